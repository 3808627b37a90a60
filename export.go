package landing

import (
	"encoding/csv"
	"io"
	"strconv"
)

/* CSV output, for offline plotting of trajectories and cost surfaces. */

var trajectoryHeader = []string{"time", "altitude", "velocity"}

func stateRecord(s VehicleState) []string {
	return []string{
		strconv.FormatFloat(s.Time, 'f', -1, 64),
		strconv.FormatFloat(s.Altitude, 'f', -1, 64),
		strconv.FormatFloat(s.Velocity, 'f', -1, 64),
	}
}

// WriteTrajectoryCSV writes a trajectory as time,altitude,velocity rows.
func WriteTrajectoryCSV(w io.Writer, traj Trajectory) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(trajectoryHeader); err != nil {
		return err
	}
	for _, s := range traj.States {
		if err := cw.Write(stateRecord(s)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// StreamTrajectory writes states as they arrive on the channel, flushing per
// state, and returns once the channel is closed. Meant to run in its own
// goroutine next to a live landing loop.
func StreamTrajectory(w io.Writer, stateChan <-chan VehicleState) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(trajectoryHeader); err != nil {
		return err
	}
	cw.Flush()
	for s := range stateChan {
		if err := cw.Write(stateRecord(s)); err != nil {
			return err
		}
		cw.Flush()
	}
	return cw.Error()
}

// WriteGridCSV writes the cost surface of a grid sweep: one row per velocity
// coefficient, one column per height coefficient.
func WriteGridCSV(w io.Writer, rslt GridResult) error {
	cw := csv.NewWriter(w)
	header := make([]string, 1+len(rslt.HeightGrid))
	header[0] = "velocity_change/height_change"
	for j, hc := range rslt.HeightGrid {
		header[j+1] = strconv.FormatFloat(hc, 'f', -1, 64)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, vc := range rslt.VelocityGrid {
		record := make([]string, 1+len(rslt.HeightGrid))
		record[0] = strconv.FormatFloat(vc, 'f', -1, 64)
		for j := range rslt.HeightGrid {
			record[j+1] = strconv.FormatFloat(rslt.Costs.At(i, j), 'f', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
