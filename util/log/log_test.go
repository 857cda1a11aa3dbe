package log

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestLogBeforeInit(t *testing.T) {
	// Must not panic nor write anywhere.
	Debugf("debug %d", 1)
	Infof("info %s", "x")
	Warn("warn")
	Error(errors.New("boom"))
}

func TestInit(t *testing.T) {
	dir, err := ioutil.TempDir("", "gsc-log")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		os.RemoveAll(dir)
		logger = discardLogger()
		logPath = "./logs"
		debug = false
	}()

	SetPath(dir)
	SetRotation(Rotation{MaxSize: 1, MaxBackups: 1, MaxAge: 1})
	Init(false)

	Info("normalized abi")
	Errorf("failed: %v", errors.New("missing type"))

	for _, name := range []string{logNameInfo, logNameError} {
		content, err := ioutil.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if len(content) == 0 {
			t.Fatalf("Log file %s is empty", name)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, logNameDebug)); err == nil {
		t.Fatalf("Debug log file should not be created in non-debug mode")
	}
}

func TestLogFormatter(t *testing.T) {
	defer SetPrefix("")

	entry := &logrus.Entry{
		Time:    time.Date(2018, 11, 30, 16, 4, 0, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "hello\n",
	}

	f := new(logFormatter)
	get, _ := f.Format(entry)
	want := "2018-11-30 16:04:00.000 [info] hello\n"
	if string(get) != want {
		t.Fatalf("Get=%q, want=%q", get, want)
	}

	SetPrefix("mainnet")
	get, _ = f.Format(entry)
	want = "2018-11-30 16:04:00.000 [mainnet][info] hello\n"
	if string(get) != want {
		t.Fatalf("Get=%q, want=%q", get, want)
	}
}

type sample struct {
	Name string `json:"name"`
}

type named string

func (n named) String() string { return "named:" + string(n) }

func TestExtract(t *testing.T) {
	if get := extract(sample{Name: "cont"}); get != `{"name":"cont"}` {
		t.Fatalf("Get=%v, want struct json", get)
	}

	if get := extract(&sample{Name: "cont"}); get != `{"name":"cont"}` {
		t.Fatalf("Get=%v, want pointer to struct json", get)
	}

	if get := extract(named("x")); get != "named:x" {
		t.Fatalf("Get=%v, want stringer output", get)
	}

	var nilPtr *sample
	if get := extract(nilPtr); get != nilPtr {
		t.Fatalf("Get=%v, want nil pointer unchanged", get)
	}

	get := extract(errors.New("boom")).(string)
	if !strings.HasPrefix(get, "boom\n") {
		t.Fatalf("Get=%q, want error message followed by stack", get)
	}
}

func TestLogHandler(t *testing.T) {
	if get := logHandler("plain", nil); get != "plain\n" {
		t.Fatalf("Get=%q, want=%q", get, "plain\n")
	}

	if get := logHandler("%d entries", []interface{}{3}); get != "3 entries\n" {
		t.Fatalf("Get=%q, want=%q", get, "3 entries\n")
	}

	if get := logHandler("", []interface{}{"a", "b"}); get != "ab\n" {
		t.Fatalf("Get=%q, want=%q", get, "ab\n")
	}
}
