package versions

import (
	"reflect"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Strings longer than this on both sides get a patch instead of a
// whole-value old/new pair.
const longStringThreshold = 200

type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeRemoved  ChangeType = "removed"
	ChangeModified ChangeType = "modified"
)

type FieldChange struct {
	Type ChangeType `json:"type"`
	Old  any        `json:"old,omitempty"`
	New  any        `json:"new,omitempty"`
	// TextPatch is set instead of Old/New for long string fields.
	TextPatch string `json:"textPatch,omitempty"`
	// Items is set instead of Old/New for arrays of objects with ids.
	Items []ItemChange `json:"items,omitempty"`
}

type ItemChange struct {
	ID   string     `json:"id"`
	Type ChangeType `json:"type"`
	Old  any        `json:"old,omitempty"`
	New  any        `json:"new,omitempty"`
}

// Structural computes a field-level diff between two snapshots. Long string
// fields fall back to a text patch, and arrays of identifiable objects are
// matched by id rather than position.
func Structural(before, after map[string]any) map[string]FieldChange {
	changes := make(map[string]FieldChange)

	for key, oldVal := range before {
		newVal, exists := after[key]
		if !exists {
			changes[key] = FieldChange{Type: ChangeRemoved, Old: oldVal}
			continue
		}
		if reflect.DeepEqual(oldVal, newVal) {
			continue
		}
		changes[key] = modifiedChange(oldVal, newVal)
	}

	for key, newVal := range after {
		if _, exists := before[key]; !exists {
			changes[key] = FieldChange{Type: ChangeAdded, New: newVal}
		}
	}

	return changes
}

func modifiedChange(oldVal, newVal any) FieldChange {
	oldStr, oldIsStr := oldVal.(string)
	newStr, newIsStr := newVal.(string)
	if oldIsStr && newIsStr &&
		utf8.RuneCountInString(oldStr) > longStringThreshold &&
		utf8.RuneCountInString(newStr) > longStringThreshold {
		return FieldChange{Type: ChangeModified, TextPatch: textPatch(oldStr, newStr)}
	}

	if oldItems, ok := identifiableItems(oldVal); ok {
		if newItems, ok := identifiableItems(newVal); ok {
			return FieldChange{Type: ChangeModified, Items: diffItems(oldItems, newItems)}
		}
	}

	return FieldChange{Type: ChangeModified, Old: oldVal, New: newVal}
}

func textPatch(oldStr, newStr string) string {
	dmp := diffmatchpatch.New()
	patches := dmp.PatchMake(oldStr, newStr)
	return dmp.PatchToText(patches)
}

// identifiableItems unwraps a value into id-keyed objects when every
// element is a map carrying a string "id".
func identifiableItems(val any) (map[string]map[string]any, bool) {
	list, ok := val.([]any)
	if !ok || len(list) == 0 {
		return nil, false
	}
	items := make(map[string]map[string]any, len(list))
	for _, el := range list {
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, false
		}
		id, ok := obj["id"].(string)
		if !ok || id == "" {
			return nil, false
		}
		items[id] = obj
	}
	return items, true
}

func diffItems(oldItems, newItems map[string]map[string]any) []ItemChange {
	var changes []ItemChange
	for id, oldObj := range oldItems {
		newObj, exists := newItems[id]
		if !exists {
			changes = append(changes, ItemChange{ID: id, Type: ChangeRemoved, Old: oldObj})
			continue
		}
		if !reflect.DeepEqual(oldObj, newObj) {
			changes = append(changes, ItemChange{ID: id, Type: ChangeModified, Old: oldObj, New: newObj})
		}
	}
	for id, newObj := range newItems {
		if _, exists := oldItems[id]; !exists {
			changes = append(changes, ItemChange{ID: id, Type: ChangeAdded, New: newObj})
		}
	}
	return changes
}
