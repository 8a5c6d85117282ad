package filesystem

import "github.com/ignite-laboratories/centurion"

// FileMode selects one of the fopen style mode strings accepted by SDL_RWFromFile.
type FileMode int

const (
	ReadExisting            FileMode = iota // "r"
	ReadExistingBinary                      // "rb"
	Write                                   // "w"
	WriteBinary                             // "wb"
	Append                                  // "a"
	AppendBinary                            // "ab"
	ReadWriteExisting                       // "r+"
	ReadWriteExistingBinary                 // "rb+"
	ReadWriteReplace                        // "w+"
	ReadWriteReplaceBinary                  // "wb+"
	ReadAppend                              // "a+"
	ReadAppendBinary                        // "ab+"
)

var fileModeNames = map[FileMode]string{
	ReadExisting:            "ReadExisting",
	ReadExistingBinary:      "ReadExistingBinary",
	Write:                   "Write",
	WriteBinary:             "WriteBinary",
	Append:                  "Append",
	AppendBinary:            "AppendBinary",
	ReadWriteExisting:       "ReadWriteExisting",
	ReadWriteExistingBinary: "ReadWriteExistingBinary",
	ReadWriteReplace:        "ReadWriteReplace",
	ReadWriteReplaceBinary:  "ReadWriteReplaceBinary",
	ReadAppend:              "ReadAppend",
	ReadAppendBinary:        "ReadAppendBinary",
}

var fileModeStrings = map[FileMode]string{
	ReadExisting:            "r",
	ReadExistingBinary:      "rb",
	Write:                   "w",
	WriteBinary:             "wb",
	Append:                  "a",
	AppendBinary:            "ab",
	ReadWriteExisting:       "r+",
	ReadWriteExistingBinary: "rb+",
	ReadWriteReplace:        "w+",
	ReadWriteReplaceBinary:  "wb+",
	ReadAppend:              "a+",
	ReadAppendBinary:        "ab+",
}

func (m FileMode) String() string {
	return centurion.EnumName(fileModeNames, "FileMode", m)
}

// Mode returns the native mode string.
func (m FileMode) Mode() string {
	return centurion.EnumName(fileModeStrings, "FileMode", m)
}

// SeekMode mirrors RW_SEEK_SET, RW_SEEK_CUR and RW_SEEK_END.
type SeekMode int

const (
	SeekFromBeginning SeekMode = iota
	SeekRelative
	SeekFromEnd
)

var seekModeNames = map[SeekMode]string{
	SeekFromBeginning: "FromBeginning",
	SeekRelative:      "Relative",
	SeekFromEnd:       "FromEnd",
}

func (m SeekMode) String() string {
	return centurion.EnumName(seekModeNames, "SeekMode", m)
}

// FileType mirrors the SDL_RWOPS_* stream kinds.
type FileType uint32

const (
	TypeUnknown FileType = iota
	TypeWin32
	TypeStdio
	TypeJNI
	TypeMemory
	TypeMemoryReadOnly
)

var fileTypeNames = map[FileType]string{
	TypeUnknown:        "Unknown",
	TypeWin32:          "Win32",
	TypeStdio:          "Stdio",
	TypeJNI:            "JNI",
	TypeMemory:         "Memory",
	TypeMemoryReadOnly: "MemoryReadOnly",
}

func (t FileType) String() string {
	return centurion.EnumName(fileTypeNames, "FileType", t)
}
