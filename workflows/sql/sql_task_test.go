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
	"testing"

	sdk "github.com/databricks/databricks-sdk-go/service/jobs"
	"github.com/stretchr/testify/assert"

	"github.com/jobkit-dev/jobkit-go/workflows"
)

func TestSqlTaskChildrenFixedOrder(t *testing.T) {
	task := NewSqlTask("w1")
	task.Alert = NewSqlTaskAlert("a1")
	task.Dashboard = NewSqlTaskDashboard("d1")
	task.File = NewSqlTaskFile("/queries/report.sql")
	task.Query = NewSqlTaskQuery("q1")

	assert.Equal(t, []workflows.JobNode{
		task.Alert,
		task.Dashboard,
		task.File,
		task.Query,
	}, task.Children())
}

func TestSqlTaskChildrenOmitAbsent(t *testing.T) {
	task := NewSqlTask("w1")
	assert.Empty(t, task.Children())

	// alert and query only: dashboard and file must be skipped, order kept
	task.Alert = NewSqlTaskAlert("a1")
	task.Query = NewSqlTaskQuery("q1")
	assert.Equal(t, []workflows.JobNode{task.Alert, task.Query}, task.Children())
}

func TestSqlTaskToSDK(t *testing.T) {
	task := NewSqlTask("w1")
	task.Parameters = map[string]string{"date": "{{start_date}}"}
	task.Query = NewSqlTaskQuery("q1")

	got := task.ToSDK()
	assert.Equal(t, "w1", got.WarehouseId)
	assert.Equal(t, map[string]string{"date": "{{start_date}}"}, got.Parameters)
	assert.Equal(t, &sdk.SqlTaskQuery{QueryId: "q1"}, got.Query)
	assert.Nil(t, got.Alert)
	assert.Nil(t, got.Dashboard)
	assert.Nil(t, got.File)
}

func TestSqlTaskAlertSubscriptions(t *testing.T) {
	alert := NewSqlTaskAlert("a1")
	alert.PauseSubscriptions = true
	alert.Subscriptions = []*SqlTaskSubscription{
		{DestinationId: "dest-1"},
		{UserName: "user@example.com"},
	}

	children := alert.Children()
	assert.Len(t, children, 2)
	assert.Same(t, alert.Subscriptions[0], children[0].(*SqlTaskSubscription))

	got := alert.ToSDK()
	assert.Equal(t, &sdk.SqlTaskAlert{
		AlertId:            "a1",
		PauseSubscriptions: true,
		Subscriptions: []sdk.SqlTaskSubscription{
			{DestinationId: "dest-1"},
			{UserName: "user@example.com"},
		},
	}, got)
}

func TestSqlTaskDashboardToSDK(t *testing.T) {
	dashboard := NewSqlTaskDashboard("d1")
	dashboard.CustomSubject = "Nightly numbers"

	got := dashboard.ToSDK()
	assert.Equal(t, "d1", got.DashboardId)
	assert.Equal(t, "Nightly numbers", got.CustomSubject)
	assert.Empty(t, got.Subscriptions)
}

func TestSqlTaskFileToSDK(t *testing.T) {
	file := NewSqlTaskFile("/queries/report.sql")
	file.Source = workflows.SourceGit

	got := file.ToSDK()
	assert.Equal(t, "/queries/report.sql", got.Path)
	assert.Equal(t, sdk.Source("GIT"), got.Source)
}

func TestSqlTaskConversionIsDeterministic(t *testing.T) {
	task := NewSqlTask("w1")
	task.Alert = NewSqlTaskAlert("a1")
	task.Query = NewSqlTaskQuery("q1")

	assert.Equal(t, task.ToSDK(), task.ToSDK())
}
