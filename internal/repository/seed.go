package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mergington/activities/internal/model"
)

// DefaultSeed はMergington高校の標準の活動一覧を返す。
// レジストリはこのデータで起動時に1回だけ初期化される。
func DefaultSeed() map[string]*model.Activity {
	return map[string]*model.Activity{
		"Basketball Team": {
			Description:     "Join the varsity basketball team and compete against other schools",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu", "chris@mergington.edu"},
		},
		"Swimming Club": {
			Description:     "Swim training and competitive meets",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"sarah@mergington.edu"},
		},
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Soccer Team": {
			Description:     "Join the school soccer team and compete in matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
		},
		"Art Club": {
			Description:     "Explore your creativity through painting and drawing",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Act, direct, and produce plays and performances",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
		},
		"Math Club": {
			Description:     "Solve challenging problems and prepare for math competitions",
			Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"james@mergington.edu", "benjamin@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
		},
	}
}

// LoadSeedFile はJSONファイルからシードデータを読み込む。
// ファイルの形式はGET /activitiesのレスポンスと同一
// （活動名→Activityレコードのオブジェクト）。
func LoadSeedFile(path string) (map[string]*model.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed map[string]*model.Activity
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(seed) == 0 {
		return nil, fmt.Errorf("seed file %s contains no activities", path)
	}

	for name, a := range seed {
		if a == nil {
			return nil, fmt.Errorf("seed file %s: activity %q has no record", path, name)
		}
		if a.Participants == nil {
			a.Participants = []string{}
		}
		// 1活動につき同一メールアドレスは高々1回
		seen := make(map[string]struct{}, len(a.Participants))
		for _, email := range a.Participants {
			if _, ok := seen[email]; ok {
				return nil, fmt.Errorf("seed file %s: activity %q lists participant %q more than once", path, name, email)
			}
			seen[email] = struct{}{}
		}
	}

	return seed, nil
}
