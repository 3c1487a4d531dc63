package manifest

import "gopkg.in/yaml.v3"

// Add declares name under categoryKey.backendID, creating the category and
// backend keys as needed. Duplicate parsed names are left alone; the return
// value reports whether the document changed.
func (d *Document) Add(categoryKey, backendID, name string) bool {
	catMapping := mappingEnsure(d.root, categoryKey, newMapping)
	seq := mappingEnsure(catMapping, backendID, newSequence)
	if seq.Tag == "!!null" {
		*seq = *newSequence()
	}
	if sequenceHasName(seq, name) {
		return false
	}
	seq.Content = append(seq.Content, newScalar(name))
	return true
}

// AddCustom declares name in the top-level custom list under the same
// no-duplicate rule.
func (d *Document) AddCustom(name string) bool {
	seq := mappingEnsure(d.root, CustomKey, newSequence)
	if seq.Tag == "!!null" {
		*seq = *newSequence()
	}
	if sequenceHasName(seq, name) {
		return false
	}
	seq.Content = append(seq.Content, newScalar(name))
	return true
}

// Remove deletes the first entry under categoryKey.backendID whose parsed
// name matches, override suffix ignored. An emptied backend key is pruned;
// the category mapping stays even when empty, other backends may repopulate
// it and dropping it would churn the file.
func (d *Document) Remove(categoryKey, backendID, name string) bool {
	catMapping := mappingValue(d.root, categoryKey)
	if catMapping == nil {
		return false
	}
	seq := mappingValue(catMapping, backendID)
	if seq == nil || seq.Kind != yaml.SequenceNode {
		return false
	}
	for i, item := range seq.Content {
		if entryName(item) == name {
			seq.Content = append(seq.Content[:i], seq.Content[i+1:]...)
			if len(seq.Content) == 0 {
				mappingDelete(catMapping, backendID)
			}
			return true
		}
	}
	return false
}

// RemoveCustom deletes every custom entry matching name and drops the
// custom key once the list is empty.
func (d *Document) RemoveCustom(name string) bool {
	seq := mappingValue(d.root, CustomKey)
	if seq == nil || seq.Kind != yaml.SequenceNode {
		return false
	}
	kept := seq.Content[:0]
	removed := false
	for _, item := range seq.Content {
		if entryName(item) == name {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	seq.Content = kept
	if removed && len(seq.Content) == 0 {
		mappingDelete(d.root, CustomKey)
	}
	return removed
}

// entryName extracts the parsed package name from one sequence element,
// tolerating both encodings; undecodable elements never match.
func entryName(node *yaml.Node) string {
	entry, err := decodeEntry(node, "")
	if err != nil {
		return ""
	}
	return entry.Name
}

func sequenceHasName(seq *yaml.Node, name string) bool {
	base, _ := splitEntryName(name)
	for _, item := range seq.Content {
		if entryName(item) == base {
			return true
		}
	}
	return false
}
