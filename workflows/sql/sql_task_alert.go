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

// SqlTaskAlert evaluates a SQL alert and notifies its subscribers.
type SqlTaskAlert struct {
	AlertId            string
	PauseSubscriptions bool
	Subscriptions      []*SqlTaskSubscription
}

func NewSqlTaskAlert(alertId string) *SqlTaskAlert {
	return &SqlTaskAlert{AlertId: alertId}
}

func (a *SqlTaskAlert) Children() []workflows.JobNode {
	var children []workflows.JobNode
	for _, s := range a.Subscriptions {
		children = append(children, s)
	}
	return children
}

func (a *SqlTaskAlert) ToSDK() *sdk.SqlTaskAlert {
	alert := &sdk.SqlTaskAlert{
		AlertId:            a.AlertId,
		PauseSubscriptions: a.PauseSubscriptions,
	}
	for _, s := range a.Subscriptions {
		alert.Subscriptions = append(alert.Subscriptions, s.ToSDK())
	}
	return alert
}
