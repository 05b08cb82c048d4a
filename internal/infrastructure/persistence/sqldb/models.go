package sqldb

import (
	"time"

	"gorm.io/gorm"
)

// UserModel GORM用户模型
// domain/user/entity.go是领域实体，不依赖GORM；Repository负责两者转换
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string    `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Username  string    `gorm:"size:50;not null;comment:用户名"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (UserModel) TableName() string {
	return "users"
}

// GenreModel 分类
// 名称唯一索引覆盖已软删除的行
type GenreModel struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"uniqueIndex;size:100;not null;comment:分类名"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

func (GenreModel) TableName() string {
	return "genres"
}

// BookModel GORM图书模型
// 价格使用int64存储"分"为单位
type BookModel struct {
	ID              uint           `gorm:"primaryKey"`
	Title           string         `gorm:"uniqueIndex;size:255;not null;comment:书名"`
	Writer          string         `gorm:"index;size:100;not null;comment:作者"`
	Publisher       string         `gorm:"size:100;not null;comment:出版社"`
	PublicationYear int            `gorm:"not null;comment:出版年份"`
	Description     string         `gorm:"type:text;comment:图书描述"`
	Price           int64          `gorm:"index;not null;comment:价格(分)"`
	StockQuantity   int            `gorm:"column:stock_quantity;not null;default:0;comment:库存数量"`
	GenreID         uint           `gorm:"index;not null;comment:分类ID"`
	Genre           *GenreModel    `gorm:"foreignKey:GenreID"`
	CreatedAt       time.Time      `gorm:"index;comment:创建时间"`
	UpdatedAt       time.Time      `gorm:"comment:更新时间"`
	DeletedAt       gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

func (BookModel) TableName() string {
	return "books"
}

// OrderModel 交易
// 与OrderItemModel一对多，创建后不再修改
type OrderModel struct {
	ID         uint             `gorm:"primaryKey"`
	OrderNo    string           `gorm:"uniqueIndex;size:32;not null;comment:交易编号"`
	UserID     uint             `gorm:"index;not null;comment:下单用户ID"`
	TotalPrice int64            `gorm:"not null;comment:总金额(分)"`
	Items      []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time        `gorm:"index;comment:创建时间"`
	UpdatedAt  time.Time        `gorm:"comment:更新时间"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel 交易明细
// UnitPrice记录下单时的价格快照
type OrderItemModel struct {
	ID        uint       `gorm:"primaryKey"`
	OrderID   uint       `gorm:"index;not null;comment:交易ID"`
	BookID    uint       `gorm:"index;not null;comment:图书ID"`
	Book      *BookModel `gorm:"foreignKey:BookID"`
	Quantity  int        `gorm:"not null;comment:购买数量"`
	UnitPrice int64      `gorm:"not null;comment:下单时单价(分)"`
	Subtotal  int64      `gorm:"not null;comment:小计(分)"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
