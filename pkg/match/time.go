// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package match

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// TimeControl is the time available to a player for its moves. A zero
// TimeControl places no limit on the player.
type TimeControl struct {
	MovesToGo int
	Base, Inc time.Duration
}

// Unlimited reports whether the time control places no limit on a player.
func (tc TimeControl) Unlimited() bool {
	return tc.Base == 0 && tc.Inc == 0
}

// ParseTime parses a time control of the form [moves/]time+increment, with
// both time and increment in seconds. An empty string or "inf" parse into
// an unlimited time control.
func ParseTime(time_str string) (TimeControl, error) {
	var tc TimeControl

	if time_str == "" || time_str == "inf" {
		return tc, nil
	}

	moves_str, time_str, found := strings.Cut(time_str, "/")
	tc.MovesToGo = -1
	var err error
	if found {
		tc.MovesToGo, err = strconv.Atoi(moves_str)
		if err != nil {
			return TimeControl{}, err
		}
	} else {
		time_str = moves_str
	}

	time_str, inc_str, found := strings.Cut(time_str, "+")
	if !found {
		return TimeControl{}, errors.New("parse tc: increment not found")
	}

	incs, err := strconv.ParseFloat(inc_str, 64)
	if err != nil {
		return TimeControl{}, err
	}

	secs, err := strconv.ParseFloat(time_str, 64)
	if err != nil {
		return TimeControl{}, err
	}

	tc.Inc = time.Millisecond * time.Duration(incs*1000)
	tc.Base = time.Millisecond * time.Duration(secs*1000)
	return tc, nil
}
