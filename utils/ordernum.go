package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderNumber สร้างเลขออเดอร์อ่านง่าย timestamp + random suffix กันชนกัน
func GenerateOrderNumber() string {
	id := uuid.New()
	return fmt.Sprintf("ORD-%s-%X", time.Now().Format("20060102150405"), id[:3])
}
