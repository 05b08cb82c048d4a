package order

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOrderNo 生成交易编号
// 格式:TRX + 时间戳(毫秒) + 8位随机数,例如 TRX169924800012345678901
// 仅用于展示和检索,主键仍是自增ID;唯一索引冲突时由调用方重新生成
func GenerateOrderNo() string {
	return fmt.Sprintf("TRX%d%08d", time.Now().UnixMilli(), rand.Intn(100000000))
}
