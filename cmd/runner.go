package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/binarakost/kostctl/internal/api"
	"github.com/binarakost/kostctl/internal/panel"
	"github.com/binarakost/kostctl/internal/shared"
	"github.com/binarakost/kostctl/internal/state"
	"github.com/binarakost/kostctl/internal/tasks"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	store  state.Store
	admin  *api.AdminService
	public *api.PublicService
	chat   *api.ChatService
	panel  *panel.Panel
	engine *tasks.ExportEngine
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Store  state.Store
	Admin  *api.AdminService
	Public *api.PublicService
	Chat   *api.ChatService
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner, building any dependency not injected from
// the config.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Store == nil {
		opts.Store = state.NewMemory()
	}

	timeout := time.Duration(opts.Config.API.TimeoutSeconds) * time.Second
	if opts.Admin == nil {
		gateway := api.NewGateway(opts.Config.API.BaseURL, opts.Store, nil, opts.Logger)
		opts.Admin = api.NewAdminService(gateway, opts.Config.Kost.ID, &http.Client{Timeout: timeout})
	}
	if opts.Public == nil {
		opts.Public = api.NewPublicService(opts.Config.API.BaseURL, timeout)
	}
	if opts.Chat == nil {
		opts.Chat = api.NewChatService(opts.Config.API.BaseURL, opts.Store, timeout)
	}

	return &Runner{
		config: opts.Config,
		store:  opts.Store,
		admin:  opts.Admin,
		public: opts.Public,
		chat:   opts.Chat,
		panel:  panel.New(opts.Admin, opts.Config.Kost.PageSize, opts.Logger),
		engine: tasks.NewExportEngine(opts.Admin),
		logger: opts.Logger,
		output: opts.Output,
	}
}

// SetLogger swaps the runner's logger, used by the TUI to redirect logs to a
// file.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, loginCommand, logoutCommand, kostCommand, roomsCommand,
		nearbyCommand, rulesCommand, facilitiesCommand, publicCommand,
		chatCommand, statusCommand, exportCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) poller() *tasks.HealthPoller {
	return tasks.NewHealthPoller(r.public, 0)
}

// confirm asks a yes/no question on stdin. Anything other than y/yes counts
// as no.
func (r *Runner) confirm(format string, args ...any) bool {
	r.writePlain(format+" [y/N]: ", args...)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// promptLine reads one trimmed line from stdin.
func (r *Runner) promptLine(label string) (string, error) {
	r.writePlain("%s: ", label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
