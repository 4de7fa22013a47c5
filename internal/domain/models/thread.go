package models

// Thread is one embroidery thread color in the inventory. SN is a manually
// assigned sequence number used only for display ordering. Available
// quantity is always Stock-Out, recomputed on read and never stored.
type Thread struct {
	ID    string `bson:"_id" json:"id"`
	SN    int    `bson:"sn" json:"sn"`
	Code  string `bson:"code" json:"code"`
	Name  string `bson:"name" json:"name"`
	Stock int    `bson:"stock" json:"stock"`
	Out   int    `bson:"out" json:"out"`
}
