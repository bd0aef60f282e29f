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

// Package jobs holds the job-side nodes of a workflow definition tree: the
// JobSettings root, its tasks and their payloads, and the scheduling and
// notification nodes hanging off them.
package jobs

import (
	sdk "github.com/databricks/databricks-sdk-go/service/jobs"

	"github.com/jobkit-dev/jobkit-go/workflows"
)

type Format string

const (
	FormatSingleTask Format = "SINGLE_TASK"
	FormatMultiTask  Format = "MULTI_TASK"
)

// JobSettings is the root of a job definition tree. Converting it yields
// the payload of a Jobs API create call.
type JobSettings struct {
	Name        string
	Description string
	Tags        map[string]string

	Tasks       []*Task
	JobClusters []*JobCluster

	EmailNotifications   *JobEmailNotifications
	WebhookNotifications *WebhookNotifications
	NotificationSettings *JobNotificationSettings

	Schedule   *CronSchedule
	Continuous *Continuous
	GitSource  *GitSource
	Health     *JobsHealthRules
	Parameters []*JobParameterDefinition
	Queue      *QueueSettings
	RunAs      *JobRunAs

	MaxConcurrentRuns int
	TimeoutSeconds    int
	Format            Format
}

func NewJobSettings(name string) *JobSettings {
	return &JobSettings{Name: name}
}

func (j *JobSettings) Children() []workflows.JobNode {
	var children []workflows.JobNode
	for _, t := range j.Tasks {
		children = append(children, t)
	}
	for _, c := range j.JobClusters {
		children = append(children, c)
	}
	if j.EmailNotifications != nil {
		children = append(children, j.EmailNotifications)
	}
	if j.WebhookNotifications != nil {
		children = append(children, j.WebhookNotifications)
	}
	if j.NotificationSettings != nil {
		children = append(children, j.NotificationSettings)
	}
	if j.Schedule != nil {
		children = append(children, j.Schedule)
	}
	if j.Continuous != nil {
		children = append(children, j.Continuous)
	}
	if j.GitSource != nil {
		children = append(children, j.GitSource)
	}
	if j.Health != nil {
		children = append(children, j.Health)
	}
	for _, p := range j.Parameters {
		children = append(children, p)
	}
	if j.Queue != nil {
		children = append(children, j.Queue)
	}
	if j.RunAs != nil {
		children = append(children, j.RunAs)
	}
	return children
}

func (j *JobSettings) ToSDK() sdk.JobSettings {
	settings := sdk.JobSettings{
		Name:              j.Name,
		Description:       j.Description,
		Tags:              j.Tags,
		MaxConcurrentRuns: j.MaxConcurrentRuns,
		TimeoutSeconds:    j.TimeoutSeconds,
		Format:            sdk.Format(j.Format),
	}
	for _, t := range j.Tasks {
		settings.Tasks = append(settings.Tasks, t.ToSDK())
	}
	for _, c := range j.JobClusters {
		settings.JobClusters = append(settings.JobClusters, c.ToSDK())
	}
	if j.EmailNotifications != nil {
		settings.EmailNotifications = j.EmailNotifications.ToSDK()
	}
	if j.WebhookNotifications != nil {
		settings.WebhookNotifications = j.WebhookNotifications.ToSDK()
	}
	if j.NotificationSettings != nil {
		settings.NotificationSettings = j.NotificationSettings.ToSDK()
	}
	if j.Schedule != nil {
		settings.Schedule = j.Schedule.ToSDK()
	}
	if j.Continuous != nil {
		settings.Continuous = j.Continuous.ToSDK()
	}
	if j.GitSource != nil {
		settings.GitSource = j.GitSource.ToSDK()
	}
	if j.Health != nil {
		settings.Health = j.Health.ToSDK()
	}
	for _, p := range j.Parameters {
		settings.Parameters = append(settings.Parameters, p.ToSDK())
	}
	if j.Queue != nil {
		settings.Queue = j.Queue.ToSDK()
	}
	if j.RunAs != nil {
		settings.RunAs = j.RunAs.ToSDK()
	}
	return settings
}
