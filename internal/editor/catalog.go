package editor

import (
	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/seatmap/seatmap-editor/backend-go/internal/typeid"
)

// AddCategory adds c, assigning an id when it has none, and returns the id.
// An id already in the map is returned without changing anything.
func (e *Editor) AddCategory(c document.Category) (string, error) {
	if e.doc == nil {
		return "", ErrNoDocument
	}
	if c.ID == "" {
		c.ID = typeid.NewCategoryID()
	}
	if _, ok := e.doc.Category(c.ID); ok {
		return c.ID, nil
	}
	e.commit(document.AddCategory(e.doc, c))
	return c.ID, nil
}

func (e *Editor) UpdateCategory(id string, patch document.CategoryPatch) error {
	if e.doc == nil {
		return ErrNoDocument
	}
	if _, ok := e.doc.Category(id); !ok {
		return nil
	}
	e.commit(document.UpdateCategory(e.doc, id, patch))
	return nil
}

// DeleteCategory removes the category and unassigns it from its seats in a
// single history entry.
func (e *Editor) DeleteCategory(id string) error {
	if e.doc == nil {
		return ErrNoDocument
	}
	if _, ok := e.doc.Category(id); !ok {
		return nil
	}
	e.commit(document.DeleteCategory(e.doc, id))
	return nil
}

// LoadDefaultCategories adds whichever starter categories the map lacks.
func (e *Editor) LoadDefaultCategories() (int, error) {
	if e.doc == nil {
		return 0, ErrNoDocument
	}
	next := e.doc
	added := 0
	for _, c := range document.DefaultCategories() {
		if _, ok := next.Category(c.ID); ok {
			continue
		}
		next = document.AddCategory(next, c)
		added++
	}
	if added > 0 {
		e.commit(next)
	}
	return added, nil
}

func (e *Editor) AddZone(z document.Zone) (string, error) {
	if e.doc == nil {
		return "", ErrNoDocument
	}
	if z.ID == "" {
		z.ID = typeid.NewZoneID()
	}
	if _, ok := e.doc.Zone(z.ID); ok {
		return z.ID, nil
	}
	e.commit(document.AddZone(e.doc, z))
	return z.ID, nil
}

func (e *Editor) UpdateZone(id string, patch document.ZonePatch) error {
	if e.doc == nil {
		return ErrNoDocument
	}
	if _, ok := e.doc.Zone(id); !ok {
		return nil
	}
	e.commit(document.UpdateZone(e.doc, id, patch))
	return nil
}

func (e *Editor) DeleteZone(id string) error {
	if e.doc == nil {
		return ErrNoDocument
	}
	if _, ok := e.doc.Zone(id); !ok {
		return nil
	}
	e.commit(document.DeleteZone(e.doc, id))
	return nil
}

func (e *Editor) AddElement(el document.Element) (string, error) {
	if e.doc == nil {
		return "", ErrNoDocument
	}
	if el.ID == "" {
		el.ID = typeid.NewElementID()
	}
	if _, ok := e.doc.Element(el.ID); ok {
		return el.ID, nil
	}
	e.commit(document.AddElement(e.doc, el))
	return el.ID, nil
}

func (e *Editor) UpdateElement(id string, patch document.ElementPatch) error {
	if e.doc == nil {
		return ErrNoDocument
	}
	if _, ok := e.doc.Element(id); !ok {
		return nil
	}
	e.commit(document.UpdateElement(e.doc, id, patch))
	return nil
}

func (e *Editor) DeleteElement(id string) error {
	if e.doc == nil {
		return ErrNoDocument
	}
	if _, ok := e.doc.Element(id); !ok {
		return nil
	}
	e.commit(document.DeleteElement(e.doc, id))
	return nil
}

func (e *Editor) UpdateSettings(patch document.SettingsPatch) error {
	if e.doc == nil {
		return ErrNoDocument
	}
	e.commit(document.UpdateSettings(e.doc, patch))
	return nil
}

func (e *Editor) UpdateGridConfig(patch document.GridConfigPatch) error {
	if e.doc == nil {
		return ErrNoDocument
	}
	e.commit(document.UpdateGridConfig(e.doc, patch))
	return nil
}

func (e *Editor) Rename(name string) error {
	if e.doc == nil {
		return ErrNoDocument
	}
	e.commit(document.Rename(e.doc, name))
	return nil
}
