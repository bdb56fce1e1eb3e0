// SPDX-License-Identifier: Apache-2.0

package jsonschema

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/xataio/svgbench/pkg/plan"
)

const testDataDir = "./testdata"

func TestJSONSchemaValidation(t *testing.T) {
	t.Parallel()

	files, err := os.ReadDir(testDataDir)
	require.NoError(t, err)

	for _, file := range files {
		t.Run(file.Name(), func(t *testing.T) {
			ac, err := txtar.ParseFile(filepath.Join(testDataDir, file.Name()))
			require.NoError(t, err)

			require.Len(t, ac.Files, 2)

			var v map[string]any
			assert.NoError(t, json.Unmarshal(ac.Files[0].Data, &v))

			shouldValidate, err := strconv.ParseBool(strings.TrimSpace(string(ac.Files[1].Data)))
			require.NoError(t, err)

			err = plan.Validate(ac.Files[0].Data)
			if shouldValidate && err != nil {
				t.Errorf("%#v", err)
			} else if !shouldValidate && err == nil {
				t.Errorf("expected %q to be invalid", ac.Files[0].Name)
			}
		})
	}
}

func TestSchemaIsValidDraft(t *testing.T) {
	t.Parallel()

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(plan.SchemaJSON()))
	require.NoError(t, err)

	c := jsonschema.NewCompiler()
	require.NoError(t, c.AddResource("schema.json", doc))

	_, err = c.Compile("schema.json")
	assert.NoError(t, err)
}
