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

// NotebookTask runs a workspace or git notebook.
type NotebookTask struct {
	workflows.Leaf

	NotebookPath   string
	BaseParameters map[string]string
	Source         workflows.Source
	WarehouseId    string
}

func NewNotebookTask(notebookPath string) *NotebookTask {
	return &NotebookTask{NotebookPath: notebookPath}
}

func (t *NotebookTask) ToSDK() *sdk.NotebookTask {
	return &sdk.NotebookTask{
		NotebookPath:   t.NotebookPath,
		BaseParameters: t.BaseParameters,
		Source:         sdk.Source(t.Source),
		WarehouseId:    t.WarehouseId,
	}
}
