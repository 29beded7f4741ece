package daemon

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/matheus3301/wave/internal/api"
	"github.com/matheus3301/wave/internal/directory"
	"github.com/matheus3301/wave/internal/feed"
	"github.com/matheus3301/wave/internal/messagelog"
	"github.com/matheus3301/wave/internal/profile"
	"github.com/matheus3301/wave/internal/seed"
	"github.com/matheus3301/wave/internal/status"
)

// waveHome points WAVE_HOME at a short temp dir so socket paths stay under
// the 104-char sun_path limit on macOS.
func waveHome(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("/tmp", "wave-d-*")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	t.Setenv("WAVE_HOME", dir)
	return dir
}

func dial(t *testing.T, socketPath string) *grpc.ClientConn {
	t.Helper()
	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestDaemonLifecycle(t *testing.T) {
	waveHome(t)
	ctx := context.Background()

	app := fxtest.New(t, Module(Params{ProfileName: "test"}), fx.NopLogger)
	app.RequireStart()

	conn := dial(t, profile.SocketPath("test"))
	session := api.NewSessionClient(conn)
	messages := api.NewMessageClient(conn)

	st, err := session.GetStatus(ctx, &api.Empty{})
	if err != nil {
		t.Fatalf("GetStatus error = %v", err)
	}
	if st.Profile != "test" || st.Status != string(status.Unauthenticated) {
		t.Errorf("status = %+v, want test/UNAUTHENTICATED", st)
	}

	if _, err := session.SetTheme(ctx, &api.SetThemeRequest{Theme: "dark"}); err != nil {
		t.Fatal(err)
	}
	if _, err := session.Login(ctx, &api.LoginRequest{Identifier: "alex"}); err != nil {
		t.Fatal(err)
	}
	sent, err := messages.SendText(ctx, &api.SendTextRequest{ConversationID: "1", Text: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	if !sent.Message.IsOutbound {
		t.Error("sent message is not outbound")
	}

	app.RequireStop()

	if _, err := os.Stat(profile.SocketPath("test")); !os.IsNotExist(err) {
		t.Errorf("socket left behind after stop: %v", err)
	}
	if _, err := os.Stat(profile.LockPath("test")); !os.IsNotExist(err) {
		t.Errorf("lock left behind after stop: %v", err)
	}

	// A restarted daemon picks the theme and session back up, while the
	// appended message is gone with the process.
	app = fxtest.New(t, Module(Params{ProfileName: "test"}), fx.NopLogger)
	app.RequireStart()
	defer app.RequireStop()

	conn = dial(t, profile.SocketPath("test"))
	session = api.NewSessionClient(conn)
	messages = api.NewMessageClient(conn)

	st, err = session.GetStatus(ctx, &api.Empty{})
	if err != nil {
		t.Fatal(err)
	}
	if st.Theme != "dark" {
		t.Errorf("theme after restart = %q, want dark", st.Theme)
	}
	if !st.Authenticated || st.Identifier != "alex" || st.Status != string(status.Authenticated) {
		t.Errorf("status after restart = %+v", st)
	}

	list, err := messages.ListMessages(ctx, &api.ListMessagesRequest{ConversationID: "1"})
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range list.Messages {
		if m.ID == sent.Message.ID {
			t.Error("appended message survived a restart")
		}
	}
}

func TestSecondDaemonRefused(t *testing.T) {
	waveHome(t)

	first := fxtest.New(t, Module(Params{ProfileName: "busy"}), fx.NopLogger)
	first.RequireStart()
	defer first.RequireStop()

	second := fx.New(Module(Params{ProfileName: "busy", SocketPath: filepath.Join(profile.Dir("busy"), "2.sock")}), fx.NopLogger)
	err := second.Err()
	if err == nil {
		t.Fatal("second daemon on the same profile started")
	}
	if !strings.Contains(err.Error(), "profile is in use") {
		t.Errorf("error = %v, want lock held", err)
	}
}

func TestLogFileWritten(t *testing.T) {
	waveHome(t)

	app := fxtest.New(t, Module(Params{ProfileName: "logs"}), fx.NopLogger)
	app.RequireStart()
	app.RequireStop()

	data, err := os.ReadFile(profile.LogPath("logs"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"profile":"logs"`) || !strings.Contains(string(data), "daemon stopped") {
		t.Errorf("log file missing expected entries:\n%s", data)
	}
}

// TestNewServerWithParams verifies NewServer honours a socket override
// instead of the profile default.
func TestNewServerWithParams(t *testing.T) {
	waveHome(t)
	tmpDir, err := os.MkdirTemp("/tmp", "wave-fx-*")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()
	socketPath := filepath.Join(tmpDir, "d.sock")

	ds, err := seed.Default()
	if err != nil {
		t.Fatal(err)
	}
	dir := directory.New(ds.Chats)

	srv, err := NewServer(
		Params{ProfileName: "fxtest", SocketPath: socketPath},
		zap.NewNop(),
		api.NewSessionService("fxtest", status.NewMachine(nil), nil, dir, nil),
		api.NewChatService(dir),
		api.NewMessageService(messagelog.New(ds.Messages, dir, nil), nil),
		api.NewFeedService(feed.New(ds, nil), 0),
	)
	if err != nil {
		t.Fatalf("NewServer() with Params failed: %v", err)
	}

	if _, statErr := os.Stat(socketPath); statErr != nil {
		t.Fatalf("socket not created at %s: %v", socketPath, statErr)
	}
	if _, statErr := os.Stat(profile.SocketPath("fxtest")); !os.IsNotExist(statErr) {
		t.Error("server also bound the default profile socket")
	}

	srv.Stop(context.Background())
	if _, statErr := os.Stat(socketPath); !os.IsNotExist(statErr) {
		t.Error("socket not removed on Stop")
	}
}

type fakeDrainer struct{ err error }

func (f fakeDrainer) Close(context.Context) error { return f.err }

type fakeDB struct{ closed bool }

func (f *fakeDB) Close() error {
	f.closed = true
	return nil
}

func TestCloseStorage(t *testing.T) {
	db := &fakeDB{}
	closeStorage(context.Background(), fakeDrainer{}, db, zap.NewNop())
	if !db.closed {
		t.Error("store not closed after writer drained")
	}

	db = &fakeDB{}
	closeStorage(context.Background(), fakeDrainer{err: context.DeadlineExceeded}, db, zap.NewNop())
	if db.closed {
		t.Error("store closed while a write was still running")
	}
}
