/*
Package action defines the core domain entities of the dispatcher: the actions
bound to aliases and the table that holds them.
*/
package action

// Placeholders recognised inside step templates.
const (
	MessagePlaceholder = "{{message}}"
	ModePlaceholder    = "{{mode}}"
)

// Kind selects how the trailing arguments of an invocation are interpreted.
type Kind string

const (
	KindDelegate      Kind = "delegate"
	KindInstall       Kind = "install"
	KindUninstall     Kind = "uninstall"
	KindCommit        Kind = "commit"
	KindPublish       Kind = "publish"
	KindCommitPublish Kind = "commit-publish"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindDelegate, KindInstall, KindUninstall, KindCommit, KindPublish, KindCommitPublish:
		return true
	}
	return false
}

// InstallKind distinguishes the install variants.
type InstallKind string

const (
	InstallLocal  InstallKind = "local"
	InstallDev    InstallKind = "dev"
	InstallGlobal InstallKind = "global"
)

// Valid reports whether k is one of the known install variants.
func (k InstallKind) Valid() bool {
	return k == InstallLocal || k == InstallDev || k == InstallGlobal
}

/*
Action is the command, or ordered command sequence, bound to an alias.
Steps are shell command templates; Kind decides which placeholders are filled
and which trailing arguments are accepted.
*/
type Action struct {
	Name        string      `yaml:"name"`
	Alias       string      `yaml:"alias,omitempty"`
	Kind        Kind        `yaml:"kind"`
	Install     InstallKind `yaml:"install,omitempty"`
	Steps       []string    `yaml:"steps"`
	Description string      `yaml:"description"`
}

// Tokens returns every command token that selects the action, long form first.
func (a Action) Tokens() []string {
	if a.Alias == "" || a.Alias == a.Name {
		return []string{a.Name}
	}
	return []string{a.Name, a.Alias}
}

// RequiresPackages reports whether the action needs at least one package name.
func (a Action) RequiresPackages() bool {
	switch a.Kind {
	case KindUninstall:
		return true
	case KindInstall:
		return a.Install == InstallDev
	}
	return false
}

// Table is the closed set of actions known to the dispatcher.
type Table struct {
	DefaultMessage string   `yaml:"default_message"`
	PublishModes   []string `yaml:"publish_modes"`
	Actions        []Action `yaml:"actions"`
}

// IsPublishMode reports whether mode is one of the table's publish modes.
func (t Table) IsPublishMode(mode string) bool {
	for _, m := range t.PublishModes {
		if m == mode {
			return true
		}
	}
	return false
}
