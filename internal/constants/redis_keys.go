package constants

// Redis键常量
// TenantPlaceholder 会在运行时被实际租户ID替换
const (
	// TenantPlaceholder 租户占位符
	TenantPlaceholder = "{tenant}"

	// KeyRawTextMD5Set 已处理简历原始文本MD5集合，用于批量去重
	KeyRawTextMD5Set = TenantPlaceholder + ":resume:raw_text_md5_set"
)
