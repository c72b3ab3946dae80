package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/scene-keeper/internal/adapter"
	"github.com/MKhiriev/scene-keeper/internal/config"
	"github.com/MKhiriev/scene-keeper/internal/crypto"
	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/utils"
	"github.com/MKhiriev/scene-keeper/models"
)

const usage = `usage: scenectl <command> [flags]

commands:
  version                              show server version and store backend
  key                                  generate a new room key
  token -room ID [-duration D]         sign a room token
  load  -room ID -key KEY [-o FILE]    print the room's scene
  save  -room ID -key KEY [-i FILE]    save a scene read from FILE or stdin
  saved -room ID -key KEY [-i FILE]    report whether a scene is persisted

scene commands accept -token TOKEN for servers that require room tokens`

// App runs scenectl commands.
type App struct {
	adapter adapter.SceneAdapter
	tokens  config.App

	stdin  io.Reader
	stdout io.Writer

	logger *logger.Logger
}

// NewApp constructs an App. tokens carries the signing settings used by the
// token command; scene commands only need the adapter.
func NewApp(sceneAdapter adapter.SceneAdapter, tokens config.App, stdin io.Reader, stdout io.Writer, logger *logger.Logger) (*App, error) {
	if sceneAdapter == nil {
		return nil, ErrNoAdapter
	}
	if tokens.TokenDuration <= 0 {
		tokens.TokenDuration = config.DefaultTokenDuration
	}

	return &App{
		adapter: sceneAdapter,
		tokens:  tokens,
		stdin:   stdin,
		stdout:  stdout,
		logger:  logger,
	}, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrUsage, usage)
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("func", "*App.Run").Str("command", command).Msg("running command")

	switch command {
	case "version":
		return a.version(ctx)
	case "key":
		return a.key()
	case "token":
		return a.token(rest)
	case "load":
		return a.load(ctx, rest)
	case "save":
		return a.save(ctx, rest)
	case "saved":
		return a.saved(ctx, rest)
	case "help", "-h", "--help":
		_, err := fmt.Fprintln(a.stdout, usage)
		return err
	default:
		return fmt.Errorf("%w: %q\n%s", ErrUnknownCommand, command, usage)
	}
}

func (a *App) version(ctx context.Context) error {
	v, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(v)
}

func (a *App) key() error {
	key, err := crypto.GenerateRoomKey()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, key)
	return err
}

func (a *App) token(args []string) error {
	fs := newFlagSet("token")
	roomID := fs.String("room", "", "room id")
	duration := fs.Duration("duration", a.tokens.TokenDuration, "token lifetime")
	if err := parse(fs, args); err != nil {
		return err
	}

	if *roomID == "" {
		return ErrMissingRoom
	}
	if a.tokens.TokenSignKey == "" {
		return ErrTokensDisabled
	}

	token, err := utils.GenerateRoomToken(a.tokens.TokenIssuer, *roomID, *duration, a.tokens.TokenSignKey)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, token.String())
	return err
}

func (a *App) load(ctx context.Context, args []string) error {
	fs := newFlagSet("load")
	flags := bindSceneFlags(fs)
	output := fs.String("o", "", "write the scene to this file instead of stdout")
	if err := parse(fs, args); err != nil {
		return err
	}

	room, err := a.prepare(flags)
	if err != nil {
		return err
	}

	elements, err := a.adapter.LoadScene(ctx, room)
	if err != nil {
		return err
	}

	if *output == "" {
		return a.printJSON(elements)
	}

	data, err := json.MarshalIndent(elements, "", "  ")
	if err != nil {
		return err
	}
	if err = os.WriteFile(*output, data, 0o600); err != nil {
		return fmt.Errorf("write scene file: %w", err)
	}
	a.logger.Info().Str("room_id", room.RoomID).Int("elements", len(elements)).Str("file", *output).Msg("scene written")
	return nil
}

func (a *App) save(ctx context.Context, args []string) error {
	fs := newFlagSet("save")
	flags := bindSceneFlags(fs)
	input := fs.String("i", "", "read the scene from this file instead of stdin")
	if err := parse(fs, args); err != nil {
		return err
	}

	room, err := a.prepare(flags)
	if err != nil {
		return err
	}

	req, err := a.readScene(*input)
	if err != nil {
		return err
	}

	result, err := a.adapter.SaveScene(ctx, room, req)
	if err != nil {
		return err
	}
	return a.printJSON(result)
}

func (a *App) saved(ctx context.Context, args []string) error {
	fs := newFlagSet("saved")
	flags := bindSceneFlags(fs)
	input := fs.String("i", "", "read the scene from this file instead of stdin")
	if err := parse(fs, args); err != nil {
		return err
	}

	room, err := a.prepare(flags)
	if err != nil {
		return err
	}

	req, err := a.readScene(*input)
	if err != nil {
		return err
	}

	saved, err := a.adapter.IsSaved(ctx, room, req.Elements)
	if err != nil {
		return err
	}
	return a.printJSON(models.SceneSavedResponse{Saved: saved})
}

type sceneFlags struct {
	roomID  *string
	roomKey *string
	token   *string
}

func bindSceneFlags(fs *flag.FlagSet) sceneFlags {
	return sceneFlags{
		roomID:  fs.String("room", "", "room id"),
		roomKey: fs.String("key", "", "room key"),
		token:   fs.String("token", "", "room token"),
	}
}

// prepare validates the shared scene flags and applies the token.
func (a *App) prepare(flags sceneFlags) (models.RoomIdentity, error) {
	if *flags.roomID == "" {
		return models.RoomIdentity{}, ErrMissingRoom
	}
	if *flags.roomKey == "" {
		return models.RoomIdentity{}, ErrMissingRoomKey
	}
	if *flags.token != "" {
		a.adapter.SetToken(*flags.token)
	}
	return models.RoomIdentity{RoomID: *flags.roomID, RoomKey: *flags.roomKey}, nil
}

// readScene accepts a bare element array or a full save request object.
func (a *App) readScene(path string) (models.SaveSceneRequest, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return models.SaveSceneRequest{}, fmt.Errorf("read scene: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return models.SaveSceneRequest{}, fmt.Errorf("%w: empty input", ErrInvalidSceneFile)
	}

	var req models.SaveSceneRequest
	if data[0] == '[' {
		err = json.Unmarshal(data, &req.Elements)
	} else {
		err = json.Unmarshal(data, &req)
	}
	if err != nil {
		return models.SaveSceneRequest{}, fmt.Errorf("%w: %w", ErrInvalidSceneFile, err)
	}
	return req, nil
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return fmt.Errorf("%w\n%s", ErrUsage, usage)
		}
		return fmt.Errorf("%w: %s: %w", ErrUsage, fs.Name(), err)
	}
	return nil
}
