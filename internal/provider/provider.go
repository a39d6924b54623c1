package provider

import (
	"errors"
	"fmt"
)

var ErrUnknownProvider = errors.New("unknown provider")

// Provider is one of the supported hosting targets. The zero value is invalid;
// valid values are the four exported constants below.
type Provider int

const (
	Render Provider = iota + 1
	Railway
	Heroku
	Fly
)

// StartCommand is the process line every template embeds. Deployed apps must
// run with exactly this parameterization; tests assert each template carries it.
const StartCommand = "gunicorn backend.app:app --bind 0.0.0.0:$PORT --workers 2 --timeout 120"

type metadata struct {
	id         string
	name       string
	configFile string
	template   string
	nextStep   string
}

var registry = map[Provider]metadata{
	Render: {
		id:         "render",
		name:       "Render",
		configFile: "render.yaml",
		template:   renderYAML,
		nextStep:   "git push render main",
	},
	Railway: {
		id:         "railway",
		name:       "Railway",
		configFile: "railway.toml",
		template:   railwayTOML,
		nextStep:   "railway up",
	},
	Heroku: {
		id:         "heroku",
		name:       "Heroku",
		configFile: "Procfile",
		template:   procfile,
		nextStep:   "git push heroku main",
	},
	Fly: {
		id:         "fly",
		name:       "Fly.io",
		configFile: "fly.toml",
		template:   flyTOML,
		nextStep:   "fly deploy",
	},
}

// All returns the providers in menu order.
func All() []Provider {
	return []Provider{Render, Railway, Heroku, Fly}
}

// FromChoice maps a menu selection (1-4) to its provider.
func FromChoice(n int) (Provider, error) {
	p := Provider(n)
	if _, ok := registry[p]; !ok {
		return 0, fmt.Errorf("%w: choice %d", ErrUnknownProvider, n)
	}
	return p, nil
}

// FromID maps a provider id ("render", "railway", "heroku", "fly") to its
// provider. Used by the --provider flag.
func FromID(id string) (Provider, error) {
	for p, m := range registry {
		if m.id == id {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProvider, id)
}

func (p Provider) Valid() bool {
	_, ok := registry[p]
	return ok
}

// ID returns the stable lowercase identifier used on the command line.
func (p Provider) ID() string { return registry[p].id }

// Name returns the display name.
func (p Provider) Name() string { return registry[p].name }

// ConfigFile returns the canonical config filename the provider expects in the
// project root.
func (p Provider) ConfigFile() string { return registry[p].configFile }

// Template returns the exact file contents to write for the provider.
func (p Provider) Template() string { return registry[p].template }

// NextStep returns the shell command the user runs after the config exists.
func (p Provider) NextStep() string { return registry[p].nextStep }

func (p Provider) String() string {
	if m, ok := registry[p]; ok {
		return m.name
	}
	return fmt.Sprintf("Provider(%d)", int(p))
}
