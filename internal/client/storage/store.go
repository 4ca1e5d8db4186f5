package storage

// Store объединяет все хранилища клиента, реализуется каждым движком
type Store interface {
	AuthStorage
	MetadataStorage
	OperationStorage
	ProductCacheStorage
	IDMappingStorage
	SyncLockStorage

	Close() error
}
