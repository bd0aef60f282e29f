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

// Package jobkit is the facade over the workflow definition tree: build a
// tree under workflows/jobs, then convert, render or print it from here.
package jobkit

import (
	sdk "github.com/databricks/databricks-sdk-go/service/jobs"

	"github.com/jobkit-dev/jobkit-go/converter"
	"github.com/jobkit-dev/jobkit-go/render"
	"github.com/jobkit-dev/jobkit-go/workflows"
	"github.com/jobkit-dev/jobkit-go/workflows/jobs"
)

// Convert converts one job definition tree into the SDK's job settings.
func Convert(def *jobs.JobSettings) sdk.JobSettings {
	return def.ToSDK()
}

// ConvertAll converts named job definitions on the shared converter pool.
func ConvertAll(defs map[string]*jobs.JobSettings) (map[string]sdk.JobSettings, error) {
	return converter.GetConverter().ConvertAll(defs)
}

// RenderJob converts def and renders the Jobs API create payload.
func RenderJob(def *jobs.JobSettings) ([]byte, error) {
	return render.JobJSON(def.ToSDK())
}

// Tree renders the node tree rooted at n, for logs and debugging.
func Tree(n workflows.JobNode) string {
	return workflows.TreeString(n)
}
