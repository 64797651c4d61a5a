package v1

import (
	"time"

	"github.com/vchoerlle/zelofinanceiro-sub001/internal/importer"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/mailer"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/recalc"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/storage"
)

// Dependencies are the collaborators the handlers need beyond models.DB.
type Dependencies struct {
	Engine        *recalc.Engine
	Parser        importer.Parser
	Uploader      storage.Uploader
	Mailer        mailer.Mailer
	JWTSecret     string
	TokenLifetime time.Duration

	// Sweep runs the derived-state sweep, wired to the sweeper
	Sweep func(time.Time) error
}

var deps Dependencies

// Configure sets the package dependencies. Must be called before any
// route is served.
func Configure(d Dependencies) {
	if d.TokenLifetime == 0 {
		d.TokenLifetime = 24 * time.Hour
	}

	deps = d
}
