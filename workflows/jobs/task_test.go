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

package jobs

import (
	"testing"

	sdk "github.com/databricks/databricks-sdk-go/service/jobs"
	"github.com/stretchr/testify/assert"

	"github.com/jobkit-dev/jobkit-go/workflows"
	"github.com/jobkit-dev/jobkit-go/workflows/clusters"
	"github.com/jobkit-dev/jobkit-go/workflows/libraries"
	"github.com/jobkit-dev/jobkit-go/workflows/sql"
)

func TestTaskNotificationSettingsUnmapped(t *testing.T) {
	settings := NewTaskNotificationSettings(true)
	settings.AlertOnLastAttempt = true
	settings.NoAlertForCanceledRuns = true

	assert.Empty(t, settings.Children())
	// The mapping gap: source fields carry values, output stays default.
	assert.Equal(t, &sdk.TaskNotificationSettings{}, settings.ToSDK())
}

func TestTaskChildrenOrder(t *testing.T) {
	task := NewTask("report")
	task.DependsOn = []*TaskDependency{NewTaskDependency("ingest")}
	task.NewCluster = clusters.NewClusterSpec("13.3.x-scala2.12")
	task.Libraries = []*libraries.Library{{Jar: "dbfs:/libs/app.jar"}}
	task.SqlTask = sql.NewSqlTask("w1")
	task.Health = &JobsHealthRules{Rules: []*JobsHealthRule{
		NewJobsHealthRule(JobsHealthMetricRunDurationSeconds, JobsHealthOperatorGreaterThan, 3600),
	}}

	assert.Equal(t, []workflows.JobNode{
		task.DependsOn[0],
		task.NewCluster,
		task.Libraries[0],
		task.SqlTask,
		task.Health,
	}, task.Children())
}

func TestTaskChildrenEmptyForBareTask(t *testing.T) {
	assert.Empty(t, NewTask("noop").Children())
}

func TestTaskToSDK(t *testing.T) {
	task := NewTask("report")
	task.Description = "nightly report"
	task.DependsOn = []*TaskDependency{NewTaskDependency("ingest")}
	task.RunIf = RunIfAllSuccess
	task.JobClusterKey = "shared"
	task.MaxRetries = 3
	task.MinRetryIntervalMillis = 60000
	task.RetryOnTimeout = true
	task.NotebookTask = NewNotebookTask("/Jobs/report")
	task.NotebookTask.BaseParameters = map[string]string{"env": "prod"}

	got := task.ToSDK()
	assert.Equal(t, "report", got.TaskKey)
	assert.Equal(t, "nightly report", got.Description)
	assert.Equal(t, []sdk.TaskDependency{{TaskKey: "ingest"}}, got.DependsOn)
	assert.Equal(t, sdk.RunIf("ALL_SUCCESS"), got.RunIf)
	assert.Equal(t, "shared", got.JobClusterKey)
	assert.Equal(t, 3, got.MaxRetries)
	assert.True(t, got.RetryOnTimeout)
	assert.Equal(t, "/Jobs/report", got.NotebookTask.NotebookPath)
	assert.Equal(t, map[string]string{"env": "prod"}, got.NotebookTask.BaseParameters)
	assert.Nil(t, got.NewCluster)
	assert.Nil(t, got.SqlTask)
}

func TestTaskNewClusterConversion(t *testing.T) {
	task := NewTask("etl")
	task.NewCluster = clusters.NewClusterSpec("13.3.x-scala2.12")
	task.NewCluster.NumWorkers = 4

	got := task.ToSDK()
	if assert.NotNil(t, got.NewCluster) {
		assert.Equal(t, "13.3.x-scala2.12", got.NewCluster.SparkVersion)
		assert.Equal(t, 4, got.NewCluster.NumWorkers)
	}
}

func TestJobsHealthRulesToSDK(t *testing.T) {
	health := &JobsHealthRules{Rules: []*JobsHealthRule{
		NewJobsHealthRule(JobsHealthMetricRunDurationSeconds, JobsHealthOperatorGreaterThan, 3600),
	}}

	assert.Len(t, health.Children(), 1)
	assert.Equal(t, &sdk.JobsHealthRules{Rules: []sdk.JobsHealthRule{{
		Metric: sdk.JobsHealthMetric("RUN_DURATION_SECONDS"),
		Op:     sdk.JobsHealthOperator("GREATER_THAN"),
		Value:  3600,
	}}}, health.ToSDK())
}

func TestWebhookNotificationsChildrenOrder(t *testing.T) {
	notifications := &WebhookNotifications{
		OnFailure: []*Webhook{NewWebhook("hook-f")},
		OnStart:   []*Webhook{NewWebhook("hook-s")},
	}

	children := notifications.Children()
	assert.Len(t, children, 2)
	assert.Equal(t, "hook-f", children[0].(*Webhook).Id)
	assert.Equal(t, "hook-s", children[1].(*Webhook).Id)
}

func TestConditionTaskToSDK(t *testing.T) {
	task := NewConditionTask("{{job.parameters.rows}}", ConditionTaskOpGreaterThan, "0")
	assert.Equal(t, &sdk.ConditionTask{
		Left:  "{{job.parameters.rows}}",
		Op:    sdk.ConditionTaskOp("GREATER_THAN"),
		Right: "0",
	}, task.ToSDK())
}
