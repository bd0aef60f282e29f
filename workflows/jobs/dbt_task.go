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

// DbtTask runs a list of dbt commands against a dbt project.
type DbtTask struct {
	workflows.Leaf

	Commands          []string
	Catalog           string
	ProfilesDirectory string
	ProjectDirectory  string
	Schema            string
	Source            workflows.Source
	WarehouseId       string
}

func NewDbtTask(commands []string) *DbtTask {
	return &DbtTask{Commands: commands}
}

func (t *DbtTask) ToSDK() *sdk.DbtTask {
	return &sdk.DbtTask{
		Commands:          t.Commands,
		Catalog:           t.Catalog,
		ProfilesDirectory: t.ProfilesDirectory,
		ProjectDirectory:  t.ProjectDirectory,
		Schema:            t.Schema,
		Source:            sdk.Source(t.Source),
		WarehouseId:       t.WarehouseId,
	}
}
