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

// TaskDependency orders a task after another, optionally gated on the
// outcome of a condition task.
type TaskDependency struct {
	workflows.Leaf

	TaskKey string
	Outcome string
}

func NewTaskDependency(taskKey string) *TaskDependency {
	return &TaskDependency{TaskKey: taskKey}
}

func (d *TaskDependency) ToSDK() sdk.TaskDependency {
	return sdk.TaskDependency{
		TaskKey: d.TaskKey,
		Outcome: d.Outcome,
	}
}
