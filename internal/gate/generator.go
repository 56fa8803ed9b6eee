// Package gate renders InspIRCd authentication gate configuration.
//
// An authentication gate is a pair of connect blocks built from an IP list:
//
//   - an allow block granting listed addresses a connect class that requires
//     account authentication (SASL), inheriting from a parent class
//   - a deny block rejecting unauthenticated connections from the same
//     addresses with a configurable reason
//
// The allow block is named "auth-gate-<uuid>" so repeated runs never produce
// colliding connect class names.
package gate

import (
	"github.com/mhazell/inspircd-auth-gate/internal/config"
	"github.com/mhazell/inspircd-auth-gate/internal/lists"
	"github.com/mhazell/inspircd-auth-gate/internal/log"
)

// Generator renders all configured authentication gates.
type Generator struct {
	cfg *config.Config
}

func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Run fetches, renders and emits every configured gate in order. The first
// fatal error (transport failure, file write failure) stops the run.
func (g *Generator) Run() error {
	for _, gateCfg := range g.cfg.Gates {
		if err := g.generate(gateCfg); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) generate(gateCfg *config.GateConfig) error {
	entries, err := lists.Fetch(gateCfg.URL, g.cfg.FetchTimeout())
	if err != nil {
		return err
	}

	name := NewBlockName()
	log.Debugf("Gate \"%s\": rendering block %s with %d entries", gateCfg.Name, name, len(entries))

	allowBlock := RenderAllow(name, gateCfg.Parent, entries)
	denyBlock := RenderDeny(gateCfg.Message, entries)

	return Emit(gateCfg.Output, RenderDocument(allowBlock, denyBlock))
}
