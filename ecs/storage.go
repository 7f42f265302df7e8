package ecs

// entityStore tracks slot generations and free ids. Slot ids start at 1 so
// the zero Entity is never valid.
type entityStore struct {
	gens []generation // indexed by id-1
	dead []bool       // indexed by id-1
	free []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
		s.dead[id-1] = false
	} else {
		s.gens = append(s.gens, 0)
		s.dead = append(s.dead, false)
		id = entityID(len(s.gens))
	}
	return makeEntity(id, s.gens[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.gens[idx]++
	s.dead[idx] = true
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return !s.dead[id-1] && s.gens[id-1] == e.generation()
}

func (s *entityStore) all() []Entity {
	out := make([]Entity, 0, len(s.gens))
	for i, g := range s.gens {
		if s.dead[i] {
			continue
		}
		out = append(out, makeEntity(entityID(i+1), g))
	}
	return out
}
