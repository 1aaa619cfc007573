package registry

import (
	"github.com/kanoonai/kanoon-web/internal/activity"
	"github.com/kanoonai/kanoon-web/internal/middleware"
)

// Shared services modules look up during Boot.
const (
	InflightGuardKey Key[*middleware.InflightGuard] = "core.inflight_guard"
	RecorderKey      Key[*activity.Recorder]        = "core.activity_recorder"
	TallyKey         Key[*activity.Tally]           = "core.activity_tally"
)
