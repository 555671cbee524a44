package models

// 安保人员状态
const (
	OfficerStatusActive   = "Active"
	OfficerStatusInactive = "Inactive"
)

// Officer 表示一名安保人员，照片文件归属于该记录
type Officer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Status    string `json:"status"`
	PhotoPath string `json:"photo_path,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// IsActive reports whether the officer counts toward the active roster.
func (o Officer) IsActive() bool {
	return o.Status == "" || o.Status == OfficerStatusActive
}
