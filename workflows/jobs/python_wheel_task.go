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

// PythonWheelTask runs an entry point of an installed wheel. Parameters
// and NamedParameters are mutually exclusive.
type PythonWheelTask struct {
	workflows.Leaf

	PackageName     string
	EntryPoint      string
	Parameters      []string
	NamedParameters map[string]string
}

func NewPythonWheelTask(packageName, entryPoint string) *PythonWheelTask {
	return &PythonWheelTask{PackageName: packageName, EntryPoint: entryPoint}
}

func (t *PythonWheelTask) ToSDK() *sdk.PythonWheelTask {
	return &sdk.PythonWheelTask{
		PackageName:     t.PackageName,
		EntryPoint:      t.EntryPoint,
		Parameters:      t.Parameters,
		NamedParameters: t.NamedParameters,
	}
}
