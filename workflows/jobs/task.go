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
	sdk "github.com/databricks/databricks-sdk-go/service/jobs"

	"github.com/jobkit-dev/jobkit-go/workflows"
	"github.com/jobkit-dev/jobkit-go/workflows/clusters"
	"github.com/jobkit-dev/jobkit-go/workflows/libraries"
	"github.com/jobkit-dev/jobkit-go/workflows/sql"
)

type RunIf string

const (
	RunIfAllSuccess        RunIf = "ALL_SUCCESS"
	RunIfAllDone           RunIf = "ALL_DONE"
	RunIfNoneFailed        RunIf = "NONE_FAILED"
	RunIfAtLeastOneSuccess RunIf = "AT_LEAST_ONE_SUCCESS"
	RunIfAllFailed         RunIf = "ALL_FAILED"
	RunIfAtLeastOneFailed  RunIf = "AT_LEAST_ONE_FAILED"
)

// Task is one unit of work inside a job. Exactly one of the *Task payload
// fields is expected to be set.
type Task struct {
	TaskKey     string
	Description string

	DependsOn []*TaskDependency
	RunIf     RunIf

	ExistingClusterId string
	JobClusterKey     string
	NewCluster        *clusters.ClusterSpec
	Libraries         []*libraries.Library

	NotebookTask    *NotebookTask
	SparkJarTask    *SparkJarTask
	SparkPythonTask *SparkPythonTask
	SparkSubmitTask *SparkSubmitTask
	PythonWheelTask *PythonWheelTask
	PipelineTask    *PipelineTask
	SqlTask         *sql.SqlTask
	DbtTask         *DbtTask
	RunJobTask      *RunJobTask
	ConditionTask   *ConditionTask

	TimeoutSeconds         int
	MaxRetries             int
	MinRetryIntervalMillis int
	RetryOnTimeout         bool

	EmailNotifications   *TaskEmailNotifications
	NotificationSettings *TaskNotificationSettings
	WebhookNotifications *WebhookNotifications
	Health               *JobsHealthRules
}

func NewTask(taskKey string) *Task {
	return &Task{TaskKey: taskKey}
}

func (t *Task) Children() []workflows.JobNode {
	var children []workflows.JobNode
	for _, d := range t.DependsOn {
		children = append(children, d)
	}
	if t.NewCluster != nil {
		children = append(children, t.NewCluster)
	}
	for _, l := range t.Libraries {
		children = append(children, l)
	}
	if t.NotebookTask != nil {
		children = append(children, t.NotebookTask)
	}
	if t.SparkJarTask != nil {
		children = append(children, t.SparkJarTask)
	}
	if t.SparkPythonTask != nil {
		children = append(children, t.SparkPythonTask)
	}
	if t.SparkSubmitTask != nil {
		children = append(children, t.SparkSubmitTask)
	}
	if t.PythonWheelTask != nil {
		children = append(children, t.PythonWheelTask)
	}
	if t.PipelineTask != nil {
		children = append(children, t.PipelineTask)
	}
	if t.SqlTask != nil {
		children = append(children, t.SqlTask)
	}
	if t.DbtTask != nil {
		children = append(children, t.DbtTask)
	}
	if t.RunJobTask != nil {
		children = append(children, t.RunJobTask)
	}
	if t.ConditionTask != nil {
		children = append(children, t.ConditionTask)
	}
	if t.EmailNotifications != nil {
		children = append(children, t.EmailNotifications)
	}
	if t.NotificationSettings != nil {
		children = append(children, t.NotificationSettings)
	}
	if t.WebhookNotifications != nil {
		children = append(children, t.WebhookNotifications)
	}
	if t.Health != nil {
		children = append(children, t.Health)
	}
	return children
}

func (t *Task) ToSDK() sdk.Task {
	task := sdk.Task{
		TaskKey:                t.TaskKey,
		Description:            t.Description,
		RunIf:                  sdk.RunIf(t.RunIf),
		ExistingClusterId:      t.ExistingClusterId,
		JobClusterKey:          t.JobClusterKey,
		TimeoutSeconds:         t.TimeoutSeconds,
		MaxRetries:             t.MaxRetries,
		MinRetryIntervalMillis: t.MinRetryIntervalMillis,
		RetryOnTimeout:         t.RetryOnTimeout,
	}
	for _, d := range t.DependsOn {
		task.DependsOn = append(task.DependsOn, d.ToSDK())
	}
	if t.NewCluster != nil {
		cluster := t.NewCluster.ToSDK()
		task.NewCluster = &cluster
	}
	for _, l := range t.Libraries {
		task.Libraries = append(task.Libraries, l.ToSDK())
	}
	if t.NotebookTask != nil {
		task.NotebookTask = t.NotebookTask.ToSDK()
	}
	if t.SparkJarTask != nil {
		task.SparkJarTask = t.SparkJarTask.ToSDK()
	}
	if t.SparkPythonTask != nil {
		task.SparkPythonTask = t.SparkPythonTask.ToSDK()
	}
	if t.SparkSubmitTask != nil {
		task.SparkSubmitTask = t.SparkSubmitTask.ToSDK()
	}
	if t.PythonWheelTask != nil {
		task.PythonWheelTask = t.PythonWheelTask.ToSDK()
	}
	if t.PipelineTask != nil {
		task.PipelineTask = t.PipelineTask.ToSDK()
	}
	if t.SqlTask != nil {
		task.SqlTask = t.SqlTask.ToSDK()
	}
	if t.DbtTask != nil {
		task.DbtTask = t.DbtTask.ToSDK()
	}
	if t.RunJobTask != nil {
		task.RunJobTask = t.RunJobTask.ToSDK()
	}
	if t.ConditionTask != nil {
		task.ConditionTask = t.ConditionTask.ToSDK()
	}
	if t.EmailNotifications != nil {
		task.EmailNotifications = t.EmailNotifications.ToSDK()
	}
	if t.NotificationSettings != nil {
		task.NotificationSettings = t.NotificationSettings.ToSDK()
	}
	if t.WebhookNotifications != nil {
		task.WebhookNotifications = t.WebhookNotifications.ToSDK()
	}
	if t.Health != nil {
		task.Health = t.Health.ToSDK()
	}
	return task
}
