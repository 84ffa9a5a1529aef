package refdata

import (
	_ "embed"
	"encoding/json"
)

//go:embed data/regions.json
var regionSeed []byte

type seedFile struct {
	Regions []struct {
		ID        int64  `json:"id"`
		Name      string `json:"name"`
		Districts []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"districts"`
	} `json:"regions"`
}

func loadSeedData() ([]Region, []District, error) {
	var file seedFile
	if err := json.Unmarshal(regionSeed, &file); err != nil {
		return nil, nil, err
	}

	var regions []Region
	var districts []District
	for _, r := range file.Regions {
		regions = append(regions, Region{ID: r.ID, Name: r.Name})
		for _, d := range r.Districts {
			districts = append(districts, District{ID: d.ID, RegionID: r.ID, Name: d.Name})
		}
	}
	return regions, districts, nil
}
