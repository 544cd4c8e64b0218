//go:build e2e && unix

package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
	"unsafe"

	"github.com/creack/pty"
)

const ringSize = 1 << 20     // 1 MiB of scrollback
var binPath = "alescout_e2e" // unified binary path

// Key constants for better readability
const (
	KeyEsc      = "\x1b"
	KeyCtrlC    = "\x03"
	KeyTab      = "\t"
	KeyDown     = "\x1b[B"
	KeyF1       = "\x1bOP"
	KeyPagerOut = "q"
)

// ANSI escape sequence regex for normalization - covers CSI, OSC, charset, keypad modes
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` + // CSI sequences
		`(?:\x1b\][^\x07]*\x07)|` + // OSC sequences
		`(?:\x1b[\(\)][A-Za-z])|` + // charset sequences
		`(?:\x1b=|\x1b>)|` + // keypad mode sequences
		`\r`, // carriage returns
)

// catalogFixture is served by the fake upstream
const catalogFixture = `[
	{"id":1,"name":"Lagunitas IPA","price":"$12","image":"https://img.test/lagunitas.png","rating":{"average":4.2,"reviews":10}},
	{"id":2,"name":"Pale Ale","price":"$9.50","rating":{"average":3.5,"reviews":1234}},
	{"id":3,"name":"Amber Ale","price":"$10","image":"https://img.test/amber.png","rating":{"average":4.9,"reviews":87}}
]`

// TUITestFramework provides utilities for testing TUI applications
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string
	upstream  *httptest.Server

	// Ring buffer for continuous output capture
	mu   sync.Mutex
	buf  []byte
	head int
	full bool
	cond *sync.Cond
}

// NewTUITest creates a new TUI test framework instance
func NewTUITest(t *testing.T) *TUITestFramework {
	tf := &TUITestFramework{
		t:   t,
		buf: make([]byte, ringSize),
	}
	tf.cond = sync.NewCond(&tf.mu)
	return tf
}

// CreateTestWorkspace creates a temporary directory for config and logs
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir, err := os.MkdirTemp("", "alescout-test-*")
	if err != nil {
		return "", err
	}
	tf.workspace = tmpDir
	return tmpDir, nil
}

// ServeCatalog starts a fake upstream answering every request with the fixture
func (tf *TUITestFramework) ServeCatalog() string {
	return tf.serve(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, catalogFixture)
	})
}

// ServeStatus starts a fake upstream that always answers with status
func (tf *TUITestFramework) ServeStatus(status int) string {
	return tf.serve(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
}

// ServeSlow starts a fake upstream that holds every request for delay
func (tf *TUITestFramework) ServeSlow(delay time.Duration) string {
	return tf.serve(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
		fmt.Fprint(w, catalogFixture)
	})
}

func (tf *TUITestFramework) serve(h http.HandlerFunc) string {
	tf.upstream = httptest.NewServer(h)
	return tf.upstream.URL
}

// StartApp launches alescout against endpoint in a PTY. Config and log
// files live in the workspace.
func (tf *TUITestFramework) StartApp(endpoint string, args ...string) error {
	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return fmt.Errorf("failed to create workspace: %w", err)
		}
	}

	cmdArgs := append([]string{
		"-endpoint", endpoint,
		"-config", filepath.Join(tf.workspace, "config.toml"),
		"-log", filepath.Join(tf.workspace, "alescout.log"),
	}, args...)
	tf.cmd = exec.Command(binPath, cmdArgs...)

	// Set per-process environment variables
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C.UTF-8",
		"LANG=C.UTF-8",
		"HOME="+tf.workspace, // isolate $HOME
		"XDG_CONFIG_HOME="+tf.workspace,
	)

	// Start the command with a PTY
	ptyFile, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}

	tf.pty = ptyFile
	tf.tty = tty
	tf.cmd.Stdout = tty
	tf.cmd.Stdin = tty
	tf.cmd.Stderr = tty

	// Set terminal size
	ws := struct {
		Row uint16
		Col uint16
		X   uint16
		Y   uint16
	}{40, 120, 0, 0}
	syscall.Syscall(syscall.SYS_IOCTL, ptyFile.Fd(), uintptr(syscall.TIOCSWINSZ), uintptr(unsafe.Pointer(&ws)))

	if err := tf.cmd.Start(); err != nil {
		ptyFile.Close()
		tty.Close()
		return fmt.Errorf("failed to start command: %w", err)
	}

	// Start the continuous reader
	tf.startReader()

	return nil
}

// startReader starts the continuous reader goroutine
func (tf *TUITestFramework) startReader() {
	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := tf.pty.Read(buf)
			if n > 0 {
				tf.mu.Lock()
				for i := 0; i < n; i++ {
					tf.buf[tf.head] = buf[i]
					tf.head = (tf.head + 1) % ringSize
					if tf.head == 0 {
						tf.full = true
					}
				}
				tf.cond.Broadcast()
				tf.mu.Unlock()
			}
			if err != nil {
				tf.mu.Lock()
				tf.cond.Broadcast()
				tf.mu.Unlock()
				return
			}
		}
	}()
}

// SendKeys sends keystrokes to the application
func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// Type sends text one key at a time
func (tf *TUITestFramework) Type(text string) error {
	tf.t.Helper()
	for _, r := range text {
		if err := tf.SendKeys(string(r)); err != nil {
			return err
		}
		time.Sleep(20 * time.Millisecond)
	}
	return nil
}

// SendCtrlC sends Ctrl+C to terminate the application
func (tf *TUITestFramework) SendCtrlC() error {
	tf.t.Helper()
	return tf.SendKeys(KeyCtrlC)
}

// Esc sends the escape key
func (tf *TUITestFramework) Esc() error {
	tf.t.Helper()
	return tf.SendKeys(KeyEsc)
}

// OpenHelp sends F1 to open the key help pager
func (tf *TUITestFramework) OpenHelp() error {
	tf.t.Helper()
	return tf.SendKeys(KeyF1)
}

// Driver DSL helpers for readable test scripts

// Ready waits for the first frame
func (tf *TUITestFramework) Ready() bool {
	tf.t.Helper()
	return tf.OutputContainsPlain("Explore Beer Ale", 5*time.Second)
}

// SeePlain waits for specific plain text to appear (normalized output)
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(text, 3*time.Second)
}

// Mark returns the current output position; SeePlainSince only looks past it
func (tf *TUITestFramework) Mark() int {
	tf.t.Helper()
	return len(tf.SnapshotPlain())
}

// SeePlainSince waits for text to appear after mark
func (tf *TUITestFramework) SeePlainSince(mark int, text string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		if mark > len(plain) {
			mark = 0
		}
		return strings.Contains(plain[mark:], text)
	}, timeout)
}

// OutputContainsPlain checks if the normalized output contains specific text within a timeout
func (tf *TUITestFramework) OutputContainsPlain(text string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout)
}

// WaitFor waits for a predicate to be true in the output
func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.Snapshot()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond) // simple, reliable polling; tests only
	}
}

// WaitExit waits for the process to exit and reports its exit error
func (tf *TUITestFramework) WaitExit(timeout time.Duration) (bool, error) {
	tf.t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()
	select {
	case err := <-done:
		tf.cmd = nil
		return true, err
	case <-time.After(timeout):
		return false, nil
	}
}

// Snapshot returns the current contents of the ring buffer (thread-safe)
func (tf *TUITestFramework) Snapshot() string {
	tf.t.Helper()
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return tf.snapshot()
}

// snapshot returns the current contents of the ring buffer
// NOTE: This assumes the mutex is already locked by the caller
func (tf *TUITestFramework) snapshot() string {
	if !tf.full {
		return string(tf.buf[:tf.head])
	}
	out := make([]byte, ringSize)
	copy(out, tf.buf[tf.head:])
	copy(out[ringSize-tf.head:], tf.buf[:tf.head])
	return string(out)
}

// SnapshotPlain returns the current contents of the ring buffer with ANSI sequences removed
func (tf *TUITestFramework) SnapshotPlain() string {
	tf.t.Helper()
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// DumpTailOnFail saves the last N bytes of normalized output to a file for debugging
func (tf *TUITestFramework) DumpTailOnFail(t *testing.T, name string, n int) {
	tf.t.Helper()
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	p := filepath.Join(t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(s), 0644)
	t.Logf("Saved tail to %s", p)
}

// Cleanup closes the PTY, terminates the application and stops the upstream
func (tf *TUITestFramework) Cleanup() {
	// Close PTY first to deliver SIGHUP to child process
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.tty != nil {
		_ = tf.tty.Close()
		tf.tty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
		tf.cmd = nil
	}
	if tf.upstream != nil {
		tf.upstream.Close()
		tf.upstream = nil
	}
	if tf.workspace != "" {
		_ = os.RemoveAll(tf.workspace)
		tf.workspace = ""
	}
}
