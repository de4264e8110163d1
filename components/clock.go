package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock singleton.
type ClockData struct {
	Delta float64 // Seconds integrated by the current tick
	Tick  uint64
	Time  float64
}

var Clock = donburi.NewComponentType[ClockData]()
