//go:build e2e && unix

package main

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoginShowsSearchView(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, srv := newFakeAPI(t, 30)
	require.NoError(t, tf.StartApp(srv.URL), "Failed to start app")

	tf.Login("Ada", "ada@example.com")
	require.True(t, tf.SeePlain("any breed"), "Filter bar should show the empty filter")
}

func TestRejectedLoginStaysOnForm(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, srv := newFakeAPI(t, 30)
	require.NoError(t, tf.StartApp(srv.URL), "Failed to start app")
	require.True(t, tf.Ready(), "login form should render")

	tf.Type("Ada")
	tf.SendKeys(KeyTab)
	tf.Type("not-an-email")
	tf.Enter()

	require.True(t, tf.SeePlain("Invalid credentials"), "Should show inline notice")
	require.True(t, tf.SeePlain("Log in to find a dog"), "Should stay on the login form")
}

func TestUnreachableServerShowsNotice(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, srv := newFakeAPI(t, 0)
	base := srv.URL
	srv.Close()

	require.NoError(t, tf.StartApp(base), "Failed to start app")
	require.True(t, tf.Ready(), "login form should render")

	tf.Type("Ada")
	tf.SendKeys(KeyTab)
	tf.Type("ada@example.com")
	tf.Enter()

	require.True(t, tf.OutputContainsPlain("An error occurred", 5*time.Second), "Should show unavailable notice")
}

func TestLoginPrefillIsSaved(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, srv := newFakeAPI(t, 5)
	require.NoError(t, tf.StartApp(srv.URL), "Failed to start app")
	tf.Login("Ada", "ada@example.com")

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(tf.ConfigPath())
		return err == nil && strings.Contains(string(data), "ada@example.com")
	}, 3*time.Second, 50*time.Millisecond, "Config should remember the login")
}

func TestLogoutReturnsToLogin(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	api, srv := newFakeAPI(t, 30)
	require.NoError(t, tf.StartApp(srv.URL), "Failed to start app")
	tf.Login("Ada", "ada@example.com")

	tf.SendKeys("r")
	require.True(t, tf.SeePlain("Pup00"), "Should show results")

	tf.ClearSnapshot()
	tf.SendKeys(KeyLogout)

	require.True(t, tf.Ready(), "Should return to the login form")
	require.Eventually(t, func() bool { return api.logoutCount() == 1 }, 2*time.Second, 25*time.Millisecond)
}

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, srv := newFakeAPI(t, 5)
	require.NoError(t, tf.StartApp(srv.URL), "Failed to start app")
	tf.Login("Ada", "ada@example.com")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	tf.Quit()

	select {
	case exitErr := <-done:
		t.Logf("Process exited with 'q' command (exit code: %v)", exitErr)
	case <-time.After(2 * time.Second):
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fatal("app did not exit after quit")
	}
}
