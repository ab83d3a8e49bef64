package models

// WatchList is what the alert checker monitors: which courses to search, which
// section numbers to report on, and in which term.
type WatchList struct {
	Term      string   `json:"term" bson:"term"`
	Classes   []string `json:"classes" bson:"classes"`
	Whitelist []string `json:"whitelist" bson:"whitelist"`
}

// Clone copies the lists; the copy's lists are never nil so they encode as [].
func (w WatchList) Clone() WatchList {
	return WatchList{
		Term:      w.Term,
		Classes:   copyStrings(w.Classes),
		Whitelist: copyStrings(w.Whitelist),
	}
}

func (w WatchList) IsWhitelisted(classNumber string) bool {
	return contains(w.Whitelist, classNumber)
}

// AddClass appends className unless already present.
func (w *WatchList) AddClass(className string) bool {
	if contains(w.Classes, className) {
		return false
	}
	w.Classes = append(w.Classes, className)
	return true
}

func (w *WatchList) RemoveClass(className string) bool {
	var removed bool
	w.Classes, removed = without(w.Classes, className)
	return removed
}

// Track whitelists classNumber and makes sure its course is searched.
func (w *WatchList) Track(className, classNumber string) bool {
	added := w.AddClass(className)
	if !contains(w.Whitelist, classNumber) {
		w.Whitelist = append(w.Whitelist, classNumber)
		added = true
	}
	return added
}

func (w *WatchList) Untrack(classNumber string) bool {
	var removed bool
	w.Whitelist, removed = without(w.Whitelist, classNumber)
	return removed
}

func copyStrings(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func without(list []string, s string) ([]string, bool) {
	out := list[:0:0]
	removed := false
	for _, item := range list {
		if item == s {
			removed = true
			continue
		}
		out = append(out, item)
	}
	return out, removed
}
