package dotfiles

// Status is the terminal state of one link attempt.
type Status string

const (
	StatusLinked  Status = "linked"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Reason says why an entry was skipped.
type Reason string

const (
	ReasonDestinationIsDirectory Reason = "destination-is-directory"
	ReasonDestinationIsFile      Reason = "destination-is-file"
)

// Outcome records what happened to one dotfile.
type Outcome struct {
	Dotfile Dotfile `yaml:"-" toml:"-"`

	Name        string `yaml:"name" toml:"name"`
	Source      string `yaml:"source,omitempty" toml:"source,omitempty"`
	Destination string `yaml:"destination" toml:"destination"`
	Status      Status `yaml:"status" toml:"status"`
	Reason      Reason `yaml:"reason,omitempty" toml:"reason,omitempty"`

	// Replaced is set when a symlink or (forced) file was removed first.
	Replaced bool `yaml:"replaced,omitempty" toml:"replaced,omitempty"`

	// Previous is the target of the symlink that was replaced, if any.
	Previous string `yaml:"previous,omitempty" toml:"previous,omitempty"`
	DryRun   bool `yaml:"dry_run,omitempty" toml:"dry_run,omitempty"`

	Error string `yaml:"error,omitempty" toml:"error,omitempty"`
}

// Report is the ordered result of a run.
type Report struct {
	SourceDirectory string    `yaml:"source_directory" toml:"source_directory"`
	HomeDirectory   string    `yaml:"home_directory" toml:"home_directory"`
	Force           bool      `yaml:"force" toml:"force"`
	DryRun          bool      `yaml:"dry_run" toml:"dry_run"`
	Outcomes        []Outcome `yaml:"outcomes" toml:"outcomes"`
}

// Linked counts linked entries.
func (r *Report) Linked() int { return r.count(StatusLinked) }

// Skipped counts skipped entries.
func (r *Report) Skipped() int { return r.count(StatusSkipped) }

// Failed counts failed entries. A run stops at the first failure, so this is 0 or 1.
func (r *Report) Failed() int { return r.count(StatusFailed) }

func (r *Report) count(status Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}
