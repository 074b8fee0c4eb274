package web

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/enkonix/web/database"
	"github.com/enkonix/web/logger"
	"github.com/enkonix/web/web/locale"
	"github.com/enkonix/web/web/service"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.InitLogger(logging.ERROR)
	os.Exit(m.Run())
}

func TestServerStartStop(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	if err := database.InitDB(dbPath); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = database.CloseDB()
	})

	settingService := service.SettingService{}
	assert.NoError(t, settingService.SetListen("127.0.0.1"))
	assert.NoError(t, settingService.SetPort(0))

	server := NewServer()
	if err := server.Start(); err != nil {
		t.Fatal(err)
	}

	// The server answers while running.
	addr := server.listener.Addr().String()
	resp, err := http.Get(fmt.Sprintf("http://%s/login", addr))
	assert.NoError(t, err)
	if resp != nil {
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	}

	start := time.Now()
	assert.NoError(t, server.Stop())
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestLocalizersAreRequestScoped(t *testing.T) {
	if err := locale.InitLocalizer(i18nFS); err != nil {
		t.Fatal(err)
	}

	en := locale.NewLocalizer("en-US")
	es := locale.NewLocalizer("es-ES")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "Home", locale.Localize(en, "nav.home"))
				assert.Equal(t, "Inicio", locale.Localize(es, "nav.home"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, "missing.key", locale.Localize(nil, "missing.key"))
}
