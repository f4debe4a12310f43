// Package model はドメインモデルを定義する。
package model

import "slices"

// Activity は課外活動を表す。
// 活動名はレジストリのキーであり、レコード自体には含めない（APIレスポンスの
// 形式に合わせる）。Participantsは登録順を保持し、同一メールアドレスは
// 高々1回しか現れない。
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// HasParticipant は指定メールアドレスが参加者リストに含まれるかを返す。
func (a *Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// Clone は参加者スライスを共有しないコピーを返す。
// レジストリからスナップショットを返す際に内部状態の漏洩を防ぐ。
func (a *Activity) Clone() *Activity {
	c := *a
	c.Participants = slices.Clone(a.Participants)
	return &c
}
