/*
 * Copyright (c) 2024 The jobkit-go Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package jobkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobkit-dev/jobkit-go/render"
	"github.com/jobkit-dev/jobkit-go/workflows/jobs"
	"github.com/jobkit-dev/jobkit-go/workflows/sql"
)

func TestConvertAndRender(t *testing.T) {
	task := jobs.NewTask("report")
	task.SqlTask = sql.NewSqlTask("w1")
	task.SqlTask.Query = sql.NewSqlTaskQuery("q1")

	job := jobs.NewJobSettings("nightly")
	job.Tasks = []*jobs.Task{task}

	settings := Convert(job)
	assert.Equal(t, "nightly", settings.Name)
	assert.Len(t, settings.Tasks, 1)

	payload, err := RenderJob(job)
	assert.NoError(t, err)
	assert.Equal(t, []string{"report"}, render.TaskKeys(payload))
}

func TestConvertAllFacade(t *testing.T) {
	defs := map[string]*jobs.JobSettings{
		"a": jobs.NewJobSettings("a"),
		"b": jobs.NewJobSettings("b"),
	}

	out, err := ConvertAll(defs)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "a", out["a"].Name)
	assert.Equal(t, "b", out["b"].Name)
}

func TestTreeFacade(t *testing.T) {
	job := jobs.NewJobSettings("nightly")
	job.Tasks = []*jobs.Task{jobs.NewTask("only")}

	tree := Tree(job)
	assert.True(t, strings.HasPrefix(tree, "JobSettings\n"))
	assert.Contains(t, tree, "  Task\n")
}
