package bulkprice

import (
	"sync"

	"github.com/pkg/errors"
)

// memStore is an in-memory Store that records every Save.
type memStore struct {
	mu         sync.Mutex
	products   map[int]*Product
	variations map[int][]*Product
	saved      []Product
	failSave   map[int]bool
	// afterFind runs before Find returns, used to interleave runs.
	afterFind func()
}

func newMemStore() *memStore {
	return &memStore{
		products:   make(map[int]*Product),
		variations: make(map[int][]*Product),
		failSave:   make(map[int]bool),
	}
}

func (m *memStore) add(p Product, variations ...Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := p
	m.products[p.ID] = &cp
	for i := range variations {
		v := variations[i]
		v.ParentID = p.ID
		v.Kind = KindVariation
		m.variations[p.ID] = append(m.variations[p.ID], &v)
	}
}

func (m *memStore) Find(id int) (*Product, error) {
	m.mu.Lock()
	p, ok := m.products[id]
	var cp Product
	if ok {
		cp = *p
	}
	m.mu.Unlock()

	if m.afterFind != nil {
		m.afterFind()
	}
	if !ok {
		return nil, errors.Wrapf(ErrProductNotFound, "id %d", id)
	}
	return &cp, nil
}

func (m *memStore) Variations(p *Product) ([]*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Product
	for _, v := range m.variations[p.ID] {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memStore) Save(p *Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, *p)
	if m.failSave[p.ID] {
		return errors.New("save failed")
	}
	if p.ParentID != 0 {
		for _, v := range m.variations[p.ParentID] {
			if v.ID == p.ID {
				*v = *p
			}
		}
		return nil
	}
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memStore) savedIDs() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []int
	for _, p := range m.saved {
		ids = append(ids, p.ID)
	}
	return ids
}

func (m *memStore) product(id int) Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.products[id]
}
