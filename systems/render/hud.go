package render

import (
	"fmt"
	"strings"

	"github.com/automoto/locomotion/components"
	"github.com/automoto/locomotion/config"
	"github.com/automoto/locomotion/fonts"
	"github.com/automoto/locomotion/shared/arena"
	"github.com/automoto/locomotion/shared/gamemath"
	"github.com/automoto/locomotion/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 15
)

// DrawHUD prints the published animation parameters of the first character.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !config.Debug.ShowHUD {
		return
	}
	entry, ok := tags.Character.First(e.World)
	if !ok {
		return
	}
	anim := components.Animation.Get(entry)
	rotation := components.Rotation.Get(entry)
	physics := components.Physics.Get(entry)
	input := components.Input.Get(entry)
	character := components.Character.Get(entry)
	body := components.Body.Get(entry).Body

	sprintMode := "toggle"
	if input.HoldToSprint {
		sprintMode = "hold"
	}

	lines := []string{
		fmt.Sprintf("state     %-9s (from %s, %.2fs)", anim.State, anim.PreviousState, anim.TimeInState),
		fmt.Sprintf("speed     %5.2f m/s  vy %+6.2f", gamemath.Lateral(body.Velocity()).Len(), physics.VerticalVelocity),
		fmt.Sprintf("blend     %+5.2f %+5.2f  |%.2f|", anim.Blend.X(), anim.Blend.Y(), anim.BlendMagnitude),
		fmt.Sprintf("grounded  %-5t jumping %-5t falling %-5t", anim.IsGrounded, anim.IsJumping, anim.IsFalling),
		fmt.Sprintf("mismatch  %+7.2f  rotating %t", anim.RotationMismatch, anim.IsRotatingToTarget),
		fmt.Sprintf("camera    yaw %7.1f pitch %+5.1f", rotation.CameraYaw, rotation.CameraPitch),
		fmt.Sprintf("sprint    %s (%t)  walk %t", sprintMode, input.SprintOn, input.WalkOn),
		fmt.Sprintf("respawns  %d", character.Respawns),
	}
	if b, ok := body.(*arena.Body); ok && len(b.Triggers()) > 0 {
		names := make([]string, 0, len(b.Triggers()))
		for _, t := range b.Triggers() {
			names = append(names, t.Name)
		}
		lines = append(lines, "inside    "+strings.Join(names, ", "))
	}

	face := fonts.Mono.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+hudLineHeight*(i+1), config.Render.TextColor)
	}
}
