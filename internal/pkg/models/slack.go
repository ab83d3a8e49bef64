package models

// SlackSocketData is one socket-mode envelope, both received and sent as ack.
type SlackSocketData struct {
	EnvelopeId             string             `json:"envelope_id"`
	Payload                SlackSocketPayload `json:"payload"`
	Type                   string             `json:"type,omitempty"`
	AcceptsResponsePayload bool               `json:"accepts_response_payload,omitempty"`
}

type SlackSocketPayload struct {
	Token       string `json:"token,omitempty"`
	TeamId      string `json:"team_id,omitempty"`
	ChannelId   string `json:"channel_id,omitempty"`
	ChannelName string `json:"channel_name,omitempty"`
	UserId      string `json:"user_id,omitempty"`
	UserName    string `json:"user_name,omitempty"`
	Command     string `json:"command,omitempty"`
	Text        string `json:"text"`
	ResponseUrl string `json:"response_url,omitempty"`
	TriggerId   string `json:"trigger_id,omitempty"`
}

// SlackConnectionResponse is the apps.connections.open reply.
type SlackConnectionResponse struct {
	Ok    bool   `json:"ok"`
	Url   string `json:"url"`
	Error string `json:"error"`
}
