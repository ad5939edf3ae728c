package project

import (
	"github.com/google/uuid"
)

// AssignGUIDs fills a fresh random UUID into every episode that lacks a GUID
// and reports how many were assigned. Episodes that already carry a GUID are
// never touched; feed consumers rely on GUIDs staying stable.
func (p *Project) AssignGUIDs() int {
	assigned := 0
	for i := range p.Episodes {
		if p.Episodes[i].GUID == "" {
			p.Episodes[i].GUID = uuid.NewString()
			assigned++
		}
	}
	return assigned
}
