package parser

// Tree is the parsed test document. Suites and their sections keep
// document order so reports come out in file order.
type Tree struct {
	suites  []*Suite
	byTitle map[string]*Suite
}

// Suite is one top-level `# ` group of sections.
type Suite struct {
	Title  string
	units  []*Unit
	byName map[string]*Unit
}

// Unit holds the three fenced blocks of one `## ` section. A nil slot
// means the corresponding fence has not been opened yet; once a unit
// reaches the tree all three are non-nil.
type Unit struct {
	Name      string
	Payload   []string
	Results   []string
	Generator []string
}

func newTree() *Tree {
	return &Tree{byTitle: make(map[string]*Suite)}
}

// Suites returns the suites in document order.
func (t *Tree) Suites() []*Suite { return t.suites }

func (t *Tree) addSuite(title string) (*Suite, bool) {
	if _, ok := t.byTitle[title]; ok {
		return nil, false
	}
	s := &Suite{Title: title, byName: make(map[string]*Unit)}
	t.suites = append(t.suites, s)
	t.byTitle[title] = s
	return s, true
}

// Units returns the suite's sections in document order.
func (s *Suite) Units() []*Unit { return s.units }

func (s *Suite) addUnit(name string) (*Unit, bool) {
	if _, ok := s.byName[name]; ok {
		return nil, false
	}
	u := &Unit{Name: name}
	s.units = append(s.units, u)
	s.byName[name] = u
	return u, true
}
