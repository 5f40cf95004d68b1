package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/g1tyx/idle-dungeon-runner/pkg/api"
)

const (
	MagicHeader string = `IDRS` // 4 байта
	Version1    uint32 = 1
)

// SnapshotFileHeader — точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: внутри только числа и массивы.
type SnapshotFileHeader struct {
	Magic     [4]byte // 4 байта
	Version   uint32  // 4 байта
	Seed      int64   // 8 байт
	Timestamp int64   // 8 байт
	Floor     int32   // 4 байта
	Level     int32   // 4 байта
	HP        int32   // 4 байта
	MaxHP     int32   // 4 байта
	Gold      int32   // 4 байта
	ItemCount int32   // 4 байта: экипировка + инвентарь
	EquipLen  int32   // сколько из ItemCount — экипировка
	RunIDLen  uint8   // 1 байт
	ClassLen  uint8   // 1 байт
}

// SnapshotArchive пишет и читает бинарные файлы снапшотов забега.
// Это оффлайн-формат для выгрузки/переноса, основное хранилище — SQLite.
type SnapshotArchive struct {
	SaveDir string
}

func NewSnapshotArchive(dir string) *SnapshotArchive {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.Mkdir(dir, 0755)
	}
	return &SnapshotArchive{SaveDir: dir}
}

// Save сериализует снапшот в файл run_<seed>_floor<N>_<ts>.idrs.
func (a *SnapshotArchive) Save(snap *api.RunSnapshot) (string, error) {
	ts := time.Now().Unix()
	filename := fmt.Sprintf("run_%d_floor%d_%d.idrs", snap.Seed, snap.Floor, ts)
	path := filepath.Join(a.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeBinary(f, snap, ts); err != nil {
		return "", err
	}
	return path, nil
}

func writeBinary(w io.Writer, snap *api.RunSnapshot, ts int64) error {
	runID := []byte(snap.RunID)
	class := []byte(snap.Class)
	if len(runID) > 255 {
		return fmt.Errorf("run id too long: %d", len(runID))
	}
	if len(class) > 255 {
		return fmt.Errorf("class name too long: %d", len(class))
	}

	header := SnapshotFileHeader{
		Version:   Version1,
		Seed:      snap.Seed,
		Timestamp: ts,
		Floor:     int32(snap.Floor),
		Level:     int32(snap.Level),
		HP:        int32(snap.HP),
		MaxHP:     int32(snap.MaxHP),
		Gold:      int32(snap.Gold),
		ItemCount: int32(len(snap.Equipment) + len(snap.Inventory)),
		EquipLen:  int32(len(snap.Equipment)),
		RunIDLen:  uint8(len(runID)),
		ClassLen:  uint8(len(class)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if _, err := w.Write(runID); err != nil {
		return err
	}
	if _, err := w.Write(class); err != nil {
		return err
	}

	// Предметы: uint16-длина + байты, экипировка раньше инвентаря
	items := make([]string, 0, len(snap.Equipment)+len(snap.Inventory))
	items = append(items, snap.Equipment...)
	items = append(items, snap.Inventory...)
	for _, item := range items {
		b := []byte(item)
		if len(b) > 65535 {
			return fmt.Errorf("item name too long: %d", len(b))
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(len(b))); err != nil {
			return err
		}
		if _, err := w.Write(b); err != nil {
			return err
		}
	}

	return nil
}

// Load читает снапшот из файла.
func (a *SnapshotArchive) Load(path string) (*api.RunSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (*api.RunSnapshot, error) {
	var header SnapshotFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}
	if header.EquipLen > header.ItemCount {
		return nil, fmt.Errorf("corrupt header: equip %d > items %d", header.EquipLen, header.ItemCount)
	}

	snap := &api.RunSnapshot{
		Seed:  header.Seed,
		Floor: int(header.Floor),
		Level: int(header.Level),
		HP:    int(header.HP),
		MaxHP: int(header.MaxHP),
		Gold:  int(header.Gold),
	}

	runID := make([]byte, header.RunIDLen)
	if _, err := io.ReadFull(r, runID); err != nil {
		return nil, fmt.Errorf("failed to read run id: %w", err)
	}
	snap.RunID = string(runID)

	class := make([]byte, header.ClassLen)
	if _, err := io.ReadFull(r, class); err != nil {
		return nil, fmt.Errorf("failed to read class: %w", err)
	}
	snap.Class = string(class)

	for i := int32(0); i < header.ItemCount; i++ {
		var itemLen uint16
		if err := binary.Read(r, binary.LittleEndian, &itemLen); err != nil {
			return nil, err
		}
		buf := make([]byte, itemLen)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		if i < header.EquipLen {
			snap.Equipment = append(snap.Equipment, string(buf))
		} else {
			snap.Inventory = append(snap.Inventory, string(buf))
		}
	}

	return snap, nil
}
