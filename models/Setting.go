package models

// Setting is a generic key/value configuration entry stored in the database
type Setting struct {
    ID    string `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    Key   string `gorm:"type:varchar(100);unique;not null" json:"key"`
    Value string `gorm:"type:varchar(255);not null" json:"value"`
}
