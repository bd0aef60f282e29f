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

// SparkJarTask runs the main class of a jar on the task's cluster.
type SparkJarTask struct {
	workflows.Leaf

	MainClassName string
	Parameters    []string
	// JarUri is the legacy pre-libraries field, carried for
	// round-tripping old job definitions.
	JarUri string
}

func NewSparkJarTask(mainClassName string) *SparkJarTask {
	return &SparkJarTask{MainClassName: mainClassName}
}

func (t *SparkJarTask) ToSDK() *sdk.SparkJarTask {
	return &sdk.SparkJarTask{
		MainClassName: t.MainClassName,
		Parameters:    t.Parameters,
		JarUri:        t.JarUri,
	}
}

// SparkPythonTask runs a python file.
type SparkPythonTask struct {
	workflows.Leaf

	PythonFile string
	Parameters []string
	Source     workflows.Source
}

func NewSparkPythonTask(pythonFile string) *SparkPythonTask {
	return &SparkPythonTask{PythonFile: pythonFile}
}

func (t *SparkPythonTask) ToSDK() *sdk.SparkPythonTask {
	return &sdk.SparkPythonTask{
		PythonFile: t.PythonFile,
		Parameters: t.Parameters,
		Source:     sdk.Source(t.Source),
	}
}

// SparkSubmitTask runs spark-submit with the given command line.
type SparkSubmitTask struct {
	workflows.Leaf

	Parameters []string
}

func NewSparkSubmitTask(parameters []string) *SparkSubmitTask {
	return &SparkSubmitTask{Parameters: parameters}
}

func (t *SparkSubmitTask) ToSDK() *sdk.SparkSubmitTask {
	return &sdk.SparkSubmitTask{Parameters: t.Parameters}
}
