//go:build arm64

package syscalltable

// archTable maps linux/arm64 syscall numbers to names. arm64 uses a
// unified table (no separate 32-bit compat numbering in this list),
// distinct from amd64's historical legacy numbering.
var archTable = map[uint64]string{
	17:  "getcwd",
	25:  "fcntl",
	29:  "ioctl",
	34:  "mkdirat",
	35:  "unlinkat",
	38:  "renameat",
	39:  "umount2",
	46:  "ftruncate",
	48:  "faccessat",
	49:  "chdir",
	56:  "openat",
	57:  "close",
	61:  "getdents64",
	62:  "lseek",
	63:  "read",
	64:  "write",
	65:  "readv",
	66:  "writev",
	67:  "pread64",
	68:  "pwrite64",
	72:  "pselect6",
	73:  "ppoll",
	78:  "readlinkat",
	79:  "newfstatat",
	80:  "fstat",
	93:  "exit",
	94:  "exit_group",
	95:  "waitid",
	96:  "set_tid_address",
	98:  "futex",
	99:  "set_robust_list",
	101: "nanosleep",
	113: "clock_gettime",
	124: "sched_yield",
	129: "kill",
	134: "rt_sigaction",
	135: "rt_sigprocmask",
	154: "setpgid",
	160: "uname",
	163: "getrlimit",
	167: "prctl",
	172: "getpid",
	173: "getppid",
	174: "getuid",
	175: "geteuid",
	176: "getgid",
	177: "getegid",
	178: "gettid",
	198: "socket",
	200: "bind",
	201: "listen",
	202: "accept",
	203: "connect",
	206: "sendto",
	207: "recvfrom",
	220: "clone",
	221: "execve",
	222: "mmap",
	226: "mprotect",
	215: "munmap",
	233: "madvise",
	242: "accept4",
	260: "wait4",
	261: "prlimit64",
	278: "getrandom",
	281: "execveat",
	291: "statx",
}
