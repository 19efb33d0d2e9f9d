package sofascore

import "encoding/json"

const providerName = "sofascore"

type scheduledEventsResponse struct {
	Events []eventResponse `json:"events"`
}

type eventDetailResponse struct {
	Event *eventDetail `json:"event"`
}

type eventResponse struct {
	ID             int64               `json:"id"`
	StartTimestamp unixSeconds         `json:"startTimestamp"`
	Status         statusResponse      `json:"status"`
	Tournament     *tournamentResponse `json:"tournament"`
	HomeTeam       teamResponse        `json:"homeTeam"`
	AwayTeam       teamResponse        `json:"awayTeam"`
	HomeScore      *scoreResponse      `json:"homeScore"`
	AwayScore      *scoreResponse      `json:"awayScore"`
	Venue          *venueResponse      `json:"venue"`
}

type statusResponse struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type tournamentResponse struct {
	Name string `json:"name"`
}

type teamResponse struct {
	Name       string `json:"name"`
	PictureURL string `json:"pictureUrl"`
}

type scoreResponse struct {
	Current *int `json:"current"`
}

type venueResponse struct {
	Name string `json:"name"`
}

type eventDetail struct {
	BestPlayer *playerResponse `json:"bestPlayer"`
	Videos     []videoResponse `json:"videos"`
}

type playerResponse struct {
	Name string `json:"name"`
}

type videoResponse struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// unixSeconds decodes an epoch timestamp. Anything that is not a JSON number
// decodes as 0, so one malformed event cannot fail the whole schedule.
type unixSeconds int64

func (u *unixSeconds) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		*u = 0
		return nil
	}
	if v, err := n.Int64(); err == nil {
		*u = unixSeconds(v)
		return nil
	}
	if f, err := n.Float64(); err == nil {
		*u = unixSeconds(f)
		return nil
	}
	*u = 0
	return nil
}
