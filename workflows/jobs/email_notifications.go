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
)

// JobEmailNotifications lists the addresses notified on job run
// transitions.
type JobEmailNotifications struct {
	workflows.Leaf

	NoAlertForSkippedRuns              bool
	OnDurationWarningThresholdExceeded []string
	OnFailure                          []string
	OnStart                            []string
	OnSuccess                          []string
}

func (n *JobEmailNotifications) ToSDK() *sdk.JobEmailNotifications {
	return &sdk.JobEmailNotifications{
		NoAlertForSkippedRuns:              n.NoAlertForSkippedRuns,
		OnDurationWarningThresholdExceeded: n.OnDurationWarningThresholdExceeded,
		OnFailure:                          n.OnFailure,
		OnStart:                            n.OnStart,
		OnSuccess:                          n.OnSuccess,
	}
}

// TaskEmailNotifications lists the addresses notified on task run
// transitions.
type TaskEmailNotifications struct {
	workflows.Leaf

	NoAlertForSkippedRuns              bool
	OnDurationWarningThresholdExceeded []string
	OnFailure                          []string
	OnStart                            []string
	OnSuccess                          []string
}

func (n *TaskEmailNotifications) ToSDK() *sdk.TaskEmailNotifications {
	return &sdk.TaskEmailNotifications{
		NoAlertForSkippedRuns:              n.NoAlertForSkippedRuns,
		OnDurationWarningThresholdExceeded: n.OnDurationWarningThresholdExceeded,
		OnFailure:                          n.OnFailure,
		OnStart:                            n.OnStart,
		OnSuccess:                          n.OnSuccess,
	}
}
