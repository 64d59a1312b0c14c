package domain

import "fmt"

// Level representa um nível da hierarquia de drill-down
type Level string

const (
	LevelRoot        Level = "root"
	LevelTeam        Level = "team"
	LevelSalesperson Level = "salesperson"
	LevelCustomer    Level = "customer"
	LevelItem        Level = "item"
)

const (
	RootScopeID   = "all"
	RootScopeName = "전체"
)

var levelDepth = map[Level]int{
	LevelRoot:        0,
	LevelTeam:        1,
	LevelSalesperson: 2,
	LevelCustomer:    3,
	LevelItem:        4,
}

// ParseLevel converte o parâmetro recebido em um Level válido
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return LevelRoot, nil
	}
	l := Level(s)
	if _, ok := levelDepth[l]; !ok {
		return "", fmt.Errorf("nível desconhecido: %q", s)
	}
	return l, nil
}

// Depth retorna a profundidade do nível (root = 0)
func (l Level) Depth() int {
	return levelDepth[l]
}

// Next retorna o nível filho; item não possui filho
func (l Level) Next() (Level, bool) {
	switch l {
	case LevelRoot:
		return LevelTeam, true
	case LevelTeam:
		return LevelSalesperson, true
	case LevelSalesperson:
		return LevelCustomer, true
	case LevelCustomer:
		return LevelItem, true
	}
	return "", false
}

// Scope identifica o nó da hierarquia que está sendo analisado
type Scope struct {
	Level Level  `json:"level"`
	ID    string `json:"id"`
}

// RootScope retorna o escopo "전체"
func RootScope() Scope {
	return Scope{Level: LevelRoot, ID: RootScopeID}
}

// IsRoot indica se o escopo não aplica filtro
func (s Scope) IsRoot() bool {
	return s.Level == LevelRoot || s.Level == ""
}

// PathNode é um passo do caminho de navegação exibido no breadcrumb
type PathNode struct {
	Level Level  `json:"level"`
	ID    string `json:"id"`
	Name  string `json:"name"`
}
