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

// Package sql holds the nodes of a job task that runs against a SQL
// warehouse: a query, dashboard refresh, alert evaluation or SQL file.
package sql

import (
	sdk "github.com/databricks/databricks-sdk-go/service/jobs"

	"github.com/jobkit-dev/jobkit-go/workflows"
)

// SqlTask executes one SQL object on the given warehouse. Exactly one of
// Alert, Dashboard, File and Query is expected to be set.
type SqlTask struct {
	WarehouseId string
	Alert       *SqlTaskAlert
	Dashboard   *SqlTaskDashboard
	File        *SqlTaskFile
	Query       *SqlTaskQuery
	Parameters  map[string]string
}

func NewSqlTask(warehouseId string) *SqlTask {
	return &SqlTask{WarehouseId: warehouseId}
}

// Children returns the present payload nodes in alert, dashboard, file,
// query order.
func (t *SqlTask) Children() []workflows.JobNode {
	var children []workflows.JobNode
	if t.Alert != nil {
		children = append(children, t.Alert)
	}
	if t.Dashboard != nil {
		children = append(children, t.Dashboard)
	}
	if t.File != nil {
		children = append(children, t.File)
	}
	if t.Query != nil {
		children = append(children, t.Query)
	}
	return children
}

func (t *SqlTask) ToSDK() *sdk.SqlTask {
	task := &sdk.SqlTask{
		WarehouseId: t.WarehouseId,
		Parameters:  t.Parameters,
	}
	if t.Alert != nil {
		task.Alert = t.Alert.ToSDK()
	}
	if t.Dashboard != nil {
		task.Dashboard = t.Dashboard.ToSDK()
	}
	if t.File != nil {
		task.File = t.File.ToSDK()
	}
	if t.Query != nil {
		task.Query = t.Query.ToSDK()
	}
	return task
}
