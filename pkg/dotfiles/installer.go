package dotfiles

import (
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/arthur-debert/housekeeper/pkg/errors"
	"github.com/arthur-debert/housekeeper/pkg/filesystem"
	"github.com/arthur-debert/housekeeper/pkg/logging"
	"github.com/arthur-debert/housekeeper/pkg/paths"
	"github.com/rs/zerolog"
)

// DirPerm is the mode used when the home directory has to be created.
const DirPerm = 0755

// Options configures an Installer.
type Options struct {
	// HomeDirectory is where the dotted links go.
	HomeDirectory string

	// Force allows replacing plain files at the destination.
	Force bool

	// DryRun inspects the destination but never changes it.
	DryRun bool

	// FS defaults to the OS filesystem.
	FS filesystem.FS

	// Logger receives warnings for skipped entries and info for links.
	// The zero value is a disabled logger.
	Logger zerolog.Logger
}

// Installer links dotfiles into one home directory. It is immutable.
type Installer struct {
	home   string
	force  bool
	dryRun bool
	fs     filesystem.FS
	logger zerolog.Logger
}

// NewInstaller creates an Installer from opts.
func NewInstaller(opts Options) *Installer {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Installer{
		home:   opts.HomeDirectory,
		force:  opts.Force,
		dryRun: opts.DryRun,
		fs:     fsys,
		logger: opts.Logger,
	}
}

// HomeDirectory returns the destination directory.
func (i *Installer) HomeDirectory() string {
	return i.home
}

// Install links one dotfile.
//
// A conflict that the policy resolves by skipping is not an error: the
// returned Outcome has StatusSkipped and a Reason. On error the Outcome has
// StatusFailed and the error names the path being processed.
func (i *Installer) Install(d Dotfile) (Outcome, error) {
	destination := paths.DotPath(i.home, d.Name())
	out := Outcome{
		Dotfile:     d,
		Name:        d.Name(),
		Destination: destination,
		DryRun:      i.dryRun,
	}

	source, err := i.fs.Canonicalize(d.Path())
	if err != nil {
		return i.fail(out, errors.Wrapf(err, errors.ErrCanonicalize, "cannot resolve %s", d.Path()).WithPath(d.Path()))
	}
	out.Source = source

	logger := i.logger.With().Str("dotfile", d.Dotname()).Logger()

	info, err := i.fs.Lstat(destination)
	switch {
	case err == nil:
		if info.IsDir() {
			logger.Warn().Str("destination", destination).Msgf("%s already exists as a directory!", d.Dotname())
			return skip(out, ReasonDestinationIsDirectory), nil
		}

		if info.Mode()&os.ModeSymlink == 0 {
			logger.Warn().Str("destination", destination).Msgf("%s already exists as a file!", d.Dotname())
			if !i.force {
				return skip(out, ReasonDestinationIsFile), nil
			}
		} else {
			previous, err := i.fs.Readlink(destination)
			if err != nil {
				return i.fail(out, errors.Wrapf(err, errors.ErrFileAccess, "cannot read link %s", destination).WithPath(destination))
			}
			out.Previous = previous
			logger.Debug().Str("destination", destination).Str("previous", previous).Msg("Replacing existing symlink")
		}

		if !i.dryRun {
			if err := i.fs.Remove(destination); err != nil {
				return i.fail(out, errors.Wrapf(err, errors.ErrRemove, "cannot remove %s", destination).WithPath(destination))
			}
			logger.Debug().Str("destination", destination).Msg("Removed existing destination")
		}
		out.Replaced = true

	case stderrors.Is(err, fs.ErrNotExist):
		// free

	default:
		return i.fail(out, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", destination).WithPath(destination))
	}

	logger.Info().
		Str("source", source).
		Str("destination", destination).
		Bool("dryRun", i.dryRun).
		Msgf("Linking %s to %s", source, destination)

	if !i.dryRun {
		if err := i.fs.Symlink(source, destination); err != nil {
			return i.fail(out, errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s to %s", source, destination).
				WithPath(destination).
				WithDetail("source", source))
		}
	}

	out.Status = StatusLinked
	return out, nil
}

// InstallAll links dotfiles in order and stops at the first error.
// The report holds every outcome up to and including the failed one.
func (i *Installer) InstallAll(dotfiles []Dotfile) (*Report, error) {
	report := &Report{
		HomeDirectory: i.home,
		Force:         i.force,
		DryRun:        i.dryRun,
	}

	for _, d := range dotfiles {
		out, err := i.Install(d)
		report.Outcomes = append(report.Outcomes, out)
		if err != nil {
			return report, err
		}
	}

	return report, nil
}

// Run creates the home directory if needed, scans sourceDir and installs
// every dotfile found.
func Run(sourceDir string, opts Options) (*Report, error) {
	installer := NewInstaller(opts)
	logger := opts.Logger
	done := logging.LogOperationStart(logger, "install")
	defer done()

	if !installer.dryRun {
		if err := installer.fs.MkdirAll(installer.home, DirPerm); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create home directory %s", installer.home).
				WithPath(installer.home)
		}
	}

	dotfiles, err := Scan(installer.fs, sourceDir)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("source", sourceDir).
		Str("home", installer.home).
		Int("count", len(dotfiles)).
		Msg("Scanned dotfiles directory")

	report, err := installer.InstallAll(dotfiles)
	if report != nil {
		report.SourceDirectory = sourceDir
	}
	return report, err
}

func skip(out Outcome, reason Reason) Outcome {
	out.Status = StatusSkipped
	out.Reason = reason
	return out
}

func (i *Installer) fail(out Outcome, err *errors.Error) (Outcome, error) {
	out.Status = StatusFailed
	out.Error = err.Error()
	i.logger.Error().Err(err).Str("path", errors.PathOf(err)).Msg("Link failed")
	return out, err
}
