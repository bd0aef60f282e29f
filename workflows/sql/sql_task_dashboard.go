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

// SqlTaskDashboard refreshes a SQL dashboard and notifies its subscribers.
type SqlTaskDashboard struct {
	DashboardId        string
	CustomSubject      string
	PauseSubscriptions bool
	Subscriptions      []*SqlTaskSubscription
}

func NewSqlTaskDashboard(dashboardId string) *SqlTaskDashboard {
	return &SqlTaskDashboard{DashboardId: dashboardId}
}

func (d *SqlTaskDashboard) Children() []workflows.JobNode {
	var children []workflows.JobNode
	for _, s := range d.Subscriptions {
		children = append(children, s)
	}
	return children
}

func (d *SqlTaskDashboard) ToSDK() *sdk.SqlTaskDashboard {
	dashboard := &sdk.SqlTaskDashboard{
		DashboardId:        d.DashboardId,
		CustomSubject:      d.CustomSubject,
		PauseSubscriptions: d.PauseSubscriptions,
	}
	for _, s := range d.Subscriptions {
		dashboard.Subscriptions = append(dashboard.Subscriptions, s.ToSDK())
	}
	return dashboard
}
