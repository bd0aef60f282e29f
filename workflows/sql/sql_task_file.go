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

package sql

import (
	sdk "github.com/databricks/databricks-sdk-go/service/jobs"

	"github.com/jobkit-dev/jobkit-go/workflows"
)

// SqlTaskFile runs a SQL file from the workspace or a git checkout.
type SqlTaskFile struct {
	workflows.Leaf

	Path   string
	Source workflows.Source
}

func NewSqlTaskFile(path string) *SqlTaskFile {
	return &SqlTaskFile{Path: path}
}

func (f *SqlTaskFile) ToSDK() *sdk.SqlTaskFile {
	return &sdk.SqlTaskFile{
		Path:   f.Path,
		Source: sdk.Source(f.Source),
	}
}
