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

// SqlTaskSubscription is one recipient of an alert or dashboard
// notification, either a notification destination or a workspace user.
type SqlTaskSubscription struct {
	workflows.Leaf

	DestinationId string
	UserName      string
}

func (s *SqlTaskSubscription) ToSDK() sdk.SqlTaskSubscription {
	return sdk.SqlTaskSubscription{
		DestinationId: s.DestinationId,
		UserName:      s.UserName,
	}
}
