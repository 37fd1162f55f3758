/*
 * main_test.go, part of parley.
 *
 *
 * Copyright 2026 The parley Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const waterXYZ = "3\nwater\nO 0.0 0.0 0.1173\nH 0.0 0.7572 -0.4692\nH 0.0 -0.7572 -0.4692\n"

// testApp returns the application with exiting disabled, so errors reach the test.
func testApp(t *testing.T) (*cli.App, *test.Hook) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)
	app := newApp(logger)
	app.Writer = io.Discard
	app.ErrWriter = io.Discard
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app, hook
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ec cli.ExitCoder
	require.ErrorAs(t, err, &ec)
	return ec.ExitCode()
}

func readJSON(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestRunDefaults(t *testing.T) {
	in := writeInput(t, "water.xyz", waterXYZ)
	app, hook := testApp(t)
	require.NoError(t, app.Run([]string{"parley", "--input_file", in}))

	doc := readJSON(t, filepath.Join(filepath.Dir(in), "water.json"))
	assert.Equal(t, map[string]interface{}{"method": "RestrictedHF", "basis": "6-31G"}, doc["model"])
	assert.Equal(t, "Energy", doc["driver"])
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Done", hook.LastEntry().Message)
}

func TestRunFlags(t *testing.T) {
	in := writeInput(t, "water.xyz", waterXYZ)
	out := filepath.Join(filepath.Dir(in), "request.json")
	app, _ := testApp(t)
	require.NoError(t, app.Run([]string{"parley",
		"--input-file", in,
		"-o", out,
		"--method", "RestrictedRIMP2",
		"--basis_set", "cc-pVDZ",
		"--driver", "Optimization",
	}))

	doc := readJSON(t, out)
	assert.Equal(t, map[string]interface{}{
		"method":    "RestrictedRIMP2",
		"basis":     "cc-pVDZ",
		"aux_basis": "cc-pVDZ-RIFIT",
	}, doc["model"])
	keywords := doc["keywords"].(map[string]interface{})
	assert.Contains(t, keywords, "optimization")
	assert.Equal(t, "Optimization", doc["driver"])

	back := filepath.Join(filepath.Dir(in), "back.xyz")
	app, _ = testApp(t)
	require.NoError(t, app.Run([]string{"parley",
		"--input_format", "json", "--output_format", "xyz",
		"--input_file", out, "--output_file", back,
	}))
	data, err := os.ReadFile(back)
	require.NoError(t, err)
	assert.Equal(t, "3\n\nO 0.000000 0.000000 0.117300\nH 0.000000 0.757200 -0.469200\nH 0.000000 -0.757200 -0.469200\n", string(data))
}

func TestRunConfigFile(t *testing.T) {
	in := writeInput(t, "water.xyz", waterXYZ)
	dir := filepath.Dir(in)
	cfg := filepath.Join(dir, "parley.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("basis_set: def2-SVP\ndriver: Gradient\n"), 0644))

	app, _ := testApp(t)
	require.NoError(t, app.Run([]string{"parley", "--config", cfg, "--input_file", in, "--driver", "Dynamics"}))
	doc := readJSON(t, filepath.Join(dir, "water.json"))
	assert.Equal(t, "def2-SVP", doc["model"].(map[string]interface{})["basis"], "the file sets the basis")
	assert.Equal(t, "Dynamics", doc["driver"], "flags override the file")

	app, _ = testApp(t)
	err := app.Run([]string{"parley", "--config", filepath.Join(dir, "missing.yaml"), "--input_file", in})
	assert.Equal(t, 1, exitCode(t, err))
}

func TestRunUnsupported(t *testing.T) {
	in := writeInput(t, "water.xyz", waterXYZ)
	for _, pair := range [][2]string{{"xyz", "xyz"}, {"json", "yaml"}, {"json", "json"}} {
		app, _ := testApp(t)
		err := app.Run([]string{"parley", "--input_format", pair[0], "--output_format", pair[1], "--input_file", in})
		assert.Equal(t, 1, exitCode(t, err), pair)
		assert.EqualError(t, err, "Unsupported conversion.", pair)
	}
}

func TestRunFailures(t *testing.T) {
	app, _ := testApp(t)
	assert.Error(t, app.Run([]string{"parley"}), "the input file is required")

	in := writeInput(t, "bad.xyz", "two\n\nO 0 0 0\nH 0 0 1\n")
	app, _ = testApp(t)
	err := app.Run([]string{"parley", "--input_file", in})
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, err.Error(), "line 1")
	_, statErr := os.Stat(filepath.Join(filepath.Dir(in), "bad.json"))
	assert.True(t, os.IsNotExist(statErr), "no output on failure")

	app, _ = testApp(t)
	err = app.Run([]string{"parley", "--input_file", in, "--output_format", "pdb"})
	assert.Equal(t, 1, exitCode(t, err))

	app, _ = testApp(t)
	err = app.Run([]string{"parley", "--input_file", in, "--strict", "--method", "CCSD"})
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, err.Error(), "model.method")
}

func TestParseLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, logrus.DebugLevel, parseLogLevel())
	t.Setenv("LOG_LEVEL", "nonsense")
	assert.Equal(t, logrus.WarnLevel, parseLogLevel())
	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, logrus.WarnLevel, parseLogLevel())
}
