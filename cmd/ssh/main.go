// Command ssh serves the floor explorer over SSH. Every session gets its own
// generated floor and walks it room by room from the minimap.
package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"github.com/leonelquinteros/gotext"

	"pixelshooter/pkg/engine/input"
	"pixelshooter/pkg/engine/world"
	"pixelshooter/pkg/game/catalog"
	"pixelshooter/pkg/game/config"
	"pixelshooter/pkg/game/gameplay"
	"pixelshooter/pkg/game/generator"
	"pixelshooter/pkg/game/renderer/tui"
	"pixelshooter/pkg/game/state"
	gameworld "pixelshooter/pkg/game/world"
)

// explorerActions are the keys a session responds to, in help order
var explorerActions = []input.Action{
	input.ActionMoveUp,
	input.ActionMoveDown,
	input.ActionMoveLeft,
	input.ActionMoveRight,
	input.ActionNewFloor,
	input.ActionHelp,
	input.ActionQuit,
}

// explorer holds what every session shares
type explorer struct {
	catalog     *catalog.Catalog
	totalFloors int
}

func main() {
	configPath := flag.String("config", "pixelshooter.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("loading config", "err", err)
	}
	log.SetLevel(cfg.Level())
	gotext.Configure(cfg.LocaleDir, cfg.Language, "default")

	ex := &explorer{catalog: catalog.Default(), totalFloors: cfg.TotalFloors}
	if cfg.CatalogPath != "" {
		ex.catalog, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			log.Fatal("loading room catalog", "path", cfg.CatalogPath, "err", err)
		}
	}

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		log.Warn("failed to get working directory", "err", workErr)
	}
	log.Info("SSH config", "host", cfg.SSHHost, "port", cfg.SSHPort, "host_key", cfg.HostKeyPath, "cwd", workingDir)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSHHost, cfg.SSHPort)),
		wish.WithMiddleware(
			ex.middleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
	}
	if cfg.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("starting SSH server", "addr", net.JoinHostPort(cfg.SSHHost, cfg.SSHPort))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("server error", "err", err)
		}
	}()

	<-done
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Fatal("shutdown error", "err", err)
	}
}

// middleware runs one explorer session per SSH connection.
func (ex *explorer) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := log.With("session", uuid.New().String(), "user", sess.User())
		logger.Info("session started", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		size := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				size.update(win.Width, win.Height)
			}
		}()

		if err := ex.run(sess, size, logger); err != nil && !errors.Is(err, io.EOF) {
			logger.Error("session error", "err", err)
		}
		logger.Info("session ended")
		next(sess)
	}
}

// run is the session loop: draw, read one key, act on it.
func (ex *explorer) run(sess ssh.Session, size *sizeTracker, logger *log.Logger) error {
	out := &crlfWriter{w: sess}
	t := tui.New(out)
	t.Init()

	builder := generator.NewBuilder(ex.catalog, rand.New(rand.NewSource(time.Now().UnixNano())))
	g := state.NewGame()
	g.TotalFloors = ex.totalFloors
	g.Status = state.StatusPlaying
	gameplay.SetFloor(g, builder.Generate(1))
	g.AddMessage("SUBTLE{SSH_WELCOME}")

	showHelp := false
	reader := bufio.NewReader(sess)
	for {
		cols, rows := size.get()
		t.SetSize(rows, cols)
		t.Clear()
		t.RenderFrame(g)
		if showHelp {
			t.ShowBindings(explorerActions...)
		}

		code, err := input.ReadCode(reader)
		if err != nil {
			return err
		}

		switch action := input.ActionForCode(code); action {
		case input.ActionQuit:
			t.Clear()
			t.ShowMessage("GT{GOODBYE}")
			return nil
		case input.ActionHelp:
			showHelp = !showHelp
		case input.ActionNewFloor:
			next := g.Floor.Number%g.TotalFloors + 1
			gameplay.SetFloor(g, builder.Generate(next))
			g.AddMessage("ITEM{NEW_FLOOR}")
			logger.Debug("floor regenerated", "floor", next, "rooms", len(g.Floor.Rooms))
		case input.ActionMoveUp, input.ActionMoveDown, input.ActionMoveLeft, input.ActionMoveRight:
			walk(g, directionFor(action), logger)
		}
	}
}

// walk steps the player through wall d of the current room, if it leads anywhere.
func walk(g *state.Game, d world.Direction, logger *log.Logger) {
	room := g.Floor.Current()
	if g.Floor.Link(g.Floor.CurrentRoom, d) == gameworld.NoRoom {
		g.AddMessage("DENIED{SSH_NO_DOOR}")
		return
	}
	g.Player.Position = gameplay.DoorApproach(room, d)
	tr := gameplay.Traverse(g)
	if tr.Kind == gameplay.TransitionNone {
		g.Player.Position = room.Center()
		g.AddMessage("DENIED{SSH_NO_DOOR}")
		return
	}
	logger.Debug("walked", "kind", tr.Kind, "from", tr.From, "to", tr.To, "via", d)
}

func directionFor(a input.Action) world.Direction {
	switch a {
	case input.ActionMoveDown:
		return world.Bottom
	case input.ActionMoveLeft:
		return world.Left
	case input.ActionMoveRight:
		return world.Right
	default:
		return world.Top
	}
}

// crlfWriter turns bare newlines into CRLF; the client terminal is in raw mode.
type crlfWriter struct {
	w io.Writer
}

func (c *crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) get() (width, height int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height
}
